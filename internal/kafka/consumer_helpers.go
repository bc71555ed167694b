package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/pkg/backoff"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// handleAttempts — сколько раз сообщение обрабатывается при временных ошибках,
// прежде чем читать следующее.
const handleAttempts = 3

// handleMessage обрабатывает одно сообщение и определяет нужно ли коммитить оффсет.
// Временная ошибка повторяется на месте: FetchMessage уже сдвинул позицию
// чтения, и сам reader это сообщение повторно не отдаст.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	if !c.addressedToUs(msg) {
		return true
	}

	for attempt := 1; ; attempt++ {
		ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
		err := c.handler.HandleMessage(ctxTimeout, msg.Value)
		cancel()

		switch {
		case err == nil:
			// Успешная обработка: фиксируем метрику и коммитим оффсет
			metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
			return true
		case errors.Is(err, domain.ErrInvalidEvent):
			// Неразборчивое событие: логируем и коммитим, чтобы не обрабатывать повторно
			metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
			c.log.Warnf(ctx, "invalid event offset=%d: %v (skipped)", msg.Offset, err)
			return true
		}

		// Временная ошибка (таймаут и т.п.)
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		if attempt >= handleAttempts {
			// Оффсет не коммитим: сообщение придёт снова после рестарта или
			// ребаланса, если раньше не будет закоммичен более поздний оффсет.
			c.log.Errorf(ctx, "process failed offset=%d after %d attempts: %v (left uncommitted)",
				msg.Offset, attempt, err)
			return false
		}
		c.log.Warnf(ctx, "process failed offset=%d attempt=%d: %v (will retry)", msg.Offset, attempt, err)

		// Пауза с джиттером между повторами
		pause := c.backoff.WithJitterEqual(backoff.MinDuration(c.backoff.Initial(), 500*time.Millisecond))
		if !backoff.Sleep(ctx, pause) {
			return false
		}
	}
}

// addressedToUs — пустой ключ означает рассылку всем водителям.
func (c *Consumer) addressedToUs(msg *kafka.Message) bool {
	if len(msg.Key) == 0 || c.driverID.IsZero() {
		return true
	}
	return domain.ID(msg.Key) == c.driverID
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}
