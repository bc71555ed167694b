package realtime

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/gorilla/websocket"
)

// conn — минимальный контракт соединения (*websocket.Conn), подменяется в тестах.
type conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// dialer — установка соединения.
type dialer interface {
	DialContext(ctx context.Context, urlStr string, header http.Header) (conn, error)
}

// gorillaDialer — dialer поверх websocket.Dialer.
type gorillaDialer struct {
	d *websocket.Dialer
}

func newGorillaDialer(handshakeTimeout time.Duration) *gorillaDialer {
	return &gorillaDialer{d: &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshakeTimeout,
	}}
}

func (g *gorillaDialer) DialContext(ctx context.Context, urlStr string, header http.Header) (conn, error) {
	c, resp, err := g.d.DialContext(ctx, urlStr, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("handshake: %w", domain.ErrUnauthorized)
		}
		if resp != nil {
			return nil, fmt.Errorf("handshake status %d: %w", resp.StatusCode, err)
		}
		return nil, err
	}
	return c, nil
}
