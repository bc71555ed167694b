package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/pkg/backoff"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventHandler — диспетчер realtime-событий.
type eventHandler interface {
	HandleMessage(ctx context.Context, raw []byte) error
}

// Consumer — обёртка над kafka.Reader + зависимостями (диспетчер, logger).
type Consumer struct {
	reader         reader
	handler        eventHandler
	log            ports.Logger
	driverID       domain.ID
	processTimeout time.Duration
	backoff        *backoff.Backoff
	closeOnce      sync.Once
}

// NewConsumer — конструктор. readerConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, handler eventHandler, log ports.Logger) *Consumer {
	reader := kafka.NewReader(cfg.readerConfig())

	// Параметры по умолчанию (если не заданы в конфиге)
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	return &Consumer{
		reader:         reader,
		handler:        handler,
		log:            log,
		driverID:       cfg.DriverID,
		processTimeout: pt,
		backoff:        backoff.New(cfg.RetryInitial, cfg.RetryMax),
	}
}

// Run — основной цикл:
// 1) читаем сообщение без авто-коммита;
// 2) чужое сообщение (ключ другого водителя) → CommitMessages без обработки;
// 3) успешная обработка → CommitMessages;
// 4) неразборчивое событие → лог и CommitMessages (пропускаем навсегда);
// 5) временная ошибка → до handleAttempts повторов на месте; если не помогло,
//    оффсет не коммитится (повторная доставка после рестарта или ребаланса).
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v driver_id=%s",
		rc.Topic, rc.GroupID, rc.Brokers, c.driverID)

	// Экспоненциальный backoff на ошибках FetchMessage с equal-jitter
	retry := c.backoff.Initial()

	for {
		// Читаем сообщение (без автокоммита)
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			// Если контекст отменен -> выходим
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Иначе - временная ошибка брокера/сети. Ожидаем и повторяем
			sleep := c.backoff.WithJitterEqual(retry)
			metrics.RealtimeReconnects.WithLabelValues("kafka").Inc()
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !backoff.Sleep(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.backoff.Next(retry)
			continue
		}

		// Успешный FetchMessage -> сбрасываем интервал ожидания и инкрементим метрики
		retry = c.backoff.Initial()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		// Обрабатываем сообщение(с таймаутом внутри)
		if shouldCommit := c.handleMessage(ctx, rc.Topic, &msg); shouldCommit {
			c.commitSafely(ctx, &msg)
		}
	}
}

// Close - закрывает reader. Вызывается при остановке сессии.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
