package session

import (
	"github.com/Gunvolt24/driver_sync/internal/domain"
	ikafka "github.com/Gunvolt24/driver_sync/internal/kafka"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/realtime"
)

// WebSocketConsumers — realtime через WebSocket сервера (токен сессии в authenticate).
func WebSocketConsumers(cfg realtime.Config, log ports.Logger) ConsumerFactory {
	return func(s domain.Session, handler ports.EventHandler) ports.MessageConsumer {
		return realtime.NewConsumer(cfg, s, handler, log)
	}
}

// KafkaConsumers — realtime из топика событий; фильтр по id водителя сессии.
func KafkaConsumers(cfg ikafka.ConsumerConfig, log ports.Logger) ConsumerFactory {
	return func(s domain.Session, handler ports.EventHandler) ports.MessageConsumer {
		c := cfg
		c.DriverID = s.UserID
		return ikafka.NewConsumer(&c, handler, log)
	}
}
