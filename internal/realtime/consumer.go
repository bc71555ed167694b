package realtime

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/pkg/backoff"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
)

const metricsSource = "websocket"

var _ ports.MessageConsumer = (*Consumer)(nil)

// Consumer — WebSocket-канал одной сессии водителя: подключение,
// аутентификация, heartbeat и передача входящих сообщений обработчику.
// При разрыве переподключается с экспоненциальной задержкой.
type Consumer struct {
	cfg     Config
	session domain.Session
	dialer  dialer
	handler ports.EventHandler
	log     ports.Logger
	backoff *backoff.Backoff

	writeMu sync.Mutex
	state   atomic.Value // domain.RealtimeState

	closeOnce sync.Once
	closed    chan struct{}
}

// NewConsumer — DI-конструктор.
func NewConsumer(cfg Config, session domain.Session, handler ports.EventHandler, log ports.Logger) *Consumer {
	cfg = cfg.withDefaults()
	return newConsumer(cfg, session, newGorillaDialer(cfg.HandshakeTimeout), handler, log,
		backoff.New(cfg.RetryInitial, cfg.RetryMax))
}

func newConsumer(
	cfg Config,
	session domain.Session,
	d dialer,
	handler ports.EventHandler,
	log ports.Logger,
	b *backoff.Backoff,
) *Consumer {
	c := &Consumer{
		cfg:     cfg.withDefaults(),
		session: session,
		dialer:  d,
		handler: handler,
		log:     log,
		backoff: b,
		closed:  make(chan struct{}),
	}
	c.state.Store(domain.RealtimeConnecting)
	return c
}

// Run — цикл подключений до отмены ctx, Close или исчерпания попыток.
//  1. подключение и сообщение authenticate;
//  2. чтение сообщений до разрыва, heartbeat в фоне;
//  3. после разрыва — пауза с джиттером и повтор;
//  4. подключение, по которому пришло хоть одно сообщение, сбрасывает
//     счётчик неудач и задержку.
//
// После DegradedAfter неудач подряд канал в состоянии degraded;
// после MaxAttempts — Run возвращает domain.ErrRealtimeUnavailable.
// 401 на handshake возвращается сразу как domain.ErrUnauthorized.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Infof(ctx, "realtime consumer started url=%s user_id=%s", c.cfg.URL, c.session.UserID)

	retry := c.backoff.Initial()
	failures := 0

	for {
		if c.isClosed() {
			return nil
		}

		healthy, err := c.runSession(ctx)
		if ctx.Err() != nil {
			c.setState(domain.RealtimeDisabled)
			return ctx.Err()
		}
		if c.isClosed() {
			return nil
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			c.setState(domain.RealtimeUnavailable)
			c.log.Errorf(ctx, "realtime handshake rejected: %v", err)
			return err
		}

		if healthy {
			retry = c.backoff.Initial()
			failures = 0
		}
		failures++
		metrics.RealtimeReconnects.WithLabelValues(metricsSource).Inc()

		if c.cfg.MaxAttempts > 0 && failures >= c.cfg.MaxAttempts {
			c.setState(domain.RealtimeUnavailable)
			c.log.Errorf(ctx, "realtime channel gave up after %d attempts: %v", failures, err)
			return domain.ErrRealtimeUnavailable
		}
		if failures >= c.cfg.DegradedAfter {
			if c.setState(domain.RealtimeDegraded) {
				c.log.Warnf(ctx, "realtime channel degraded after %d failures, relying on polling", failures)
			}
		} else {
			c.setState(domain.RealtimeConnecting)
		}

		sleep := c.backoff.WithJitterEqual(retry)
		c.log.Warnf(ctx, "realtime connection lost: %v (attempt %d, reconnect in %s)", err, failures, sleep)
		if !c.sleep(ctx, sleep) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
		retry = c.backoff.Next(retry)
	}
}

// Close — останавливает Run и закрывает текущее соединение.
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

// Status — текущее состояние канала.
func (c *Consumer) Status() domain.RealtimeState {
	if s, ok := c.state.Load().(domain.RealtimeState); ok {
		return s
	}
	return domain.RealtimeDisabled
}
