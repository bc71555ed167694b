package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/pkg/backoff"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// runSession — одно подключение. healthy=true, если после authenticate
// от сервера пришло хотя бы одно сообщение; err — причина разрыва.
// Сокет, закрытый сразу после рукопожатия, считается неудачей.
func (c *Consumer) runSession(ctx context.Context) (bool, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
	ws, err := c.dialer.DialContext(dialCtx, c.cfg.URL, nil)
	cancel()
	if err != nil {
		return false, fmt.Errorf("dial: %w", err)
	}

	done := make(chan struct{})
	defer close(done)

	// Закрытие соединения разблокирует ReadMessage.
	go func() {
		select {
		case <-ctx.Done():
		case <-c.closed:
		case <-done:
		}
		_ = ws.Close()
	}()

	auth, err := json.Marshal(domain.NewAuthenticateMessage(c.session))
	if err != nil {
		return false, fmt.Errorf("encode authenticate: %w", err)
	}
	if err := c.write(ws, auth); err != nil {
		return false, fmt.Errorf("send authenticate: %w", err)
	}

	go c.heartbeat(ctx, ws, done)

	healthy := false
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return healthy, fmt.Errorf("read: %w", err)
		}
		if !healthy {
			healthy = true
			c.setState(domain.RealtimeConnected)
			c.log.Infof(ctx, "realtime connected url=%s", c.cfg.URL)
		}
		c.handle(ctx, data)
	}
}

// heartbeat — {type:heartbeat} каждые HeartbeatInterval, пока соединение живо.
func (c *Consumer) heartbeat(ctx context.Context, ws conn, done <-chan struct{}) {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			if err := c.write(ws, domain.HeartbeatMessage); err != nil {
				c.log.Warnf(ctx, "heartbeat failed: %v", err)
				return
			}
		}
	}
}

// handle — передача сообщения обработчику с таймаутом; ошибки не рвут соединение.
func (c *Consumer) handle(ctx context.Context, data []byte) {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.cfg.ProcessTimeout)
	err := c.handler.HandleMessage(ctxTimeout, data)
	cancel()

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidEvent):
		c.log.Warnf(ctx, "invalid realtime message skipped: %v", err)
	default:
		c.log.Warnf(ctx, "realtime message failed: %v", err)
	}
}

func (c *Consumer) write(ws conn, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return ws.WriteMessage(websocket.TextMessage, data)
}

// setState — true, если состояние изменилось.
func (c *Consumer) setState(s domain.RealtimeState) bool {
	prev := c.state.Swap(s)
	if s == domain.RealtimeDegraded || s == domain.RealtimeUnavailable {
		metrics.RealtimeDegraded.Set(1)
	} else {
		metrics.RealtimeDegraded.Set(0)
	}
	return prev != s
}

// sleep — пауза перед переподключением; false при отмене или Close.
func (c *Consumer) sleep(ctx context.Context, d time.Duration) bool {
	sleepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.closed:
			cancel()
		case <-sleepCtx.Done():
		}
	}()
	return backoff.Sleep(sleepCtx, d)
}

func (c *Consumer) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}
