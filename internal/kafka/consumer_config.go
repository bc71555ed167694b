package kafka

import (
	"strings"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры Kafka-источника realtime-событий.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string // пусто — "driver-<DriverID>", у каждого водителя свои оффсеты
	StartOffset string // first | last

	// DriverID — события с другим ключом пропускаются; пустой ключ — для всех.
	DriverID domain.ID

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

func (c *ConsumerConfig) groupID() string {
	if g := strings.TrimSpace(c.GroupID); g != "" {
		return g
	}
	return "driver-" + c.DriverID.String()
}

func (c *ConsumerConfig) readerConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.groupID(),
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
