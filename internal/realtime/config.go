package realtime

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config — параметры WebSocket-канала.
type Config struct {
	URL               string
	HeartbeatInterval time.Duration
	HandshakeTimeout  time.Duration
	ProcessTimeout    time.Duration
	RetryInitial      time.Duration
	RetryMax          time.Duration

	// DegradedAfter — после стольких неудач подряд канал считается деградировавшим.
	DegradedAfter int
	// MaxAttempts — после стольких неудач подряд Run завершается; 0 — без ограничения.
	MaxAttempts int
}

func (c Config) withDefaults() Config {
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = 30 * time.Second
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = 10 * time.Second
	}
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = 5 * time.Second
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = time.Second
	}
	if c.RetryMax <= 0 {
		c.RetryMax = 30 * time.Second
	}
	if c.DegradedAfter <= 0 {
		c.DegradedAfter = 5
	}
	if c.MaxAttempts < 0 {
		c.MaxAttempts = 0
	}
	return c
}

// ResolveURL — адрес WebSocket: явный wsURL или выведенный из base URL REST API
// (http → ws, https → wss, путь /ws).
func ResolveURL(wsURL, apiBase string) (string, error) {
	raw := strings.TrimSpace(wsURL)
	if raw == "" {
		raw = strings.TrimSpace(apiBase)
		if raw == "" {
			return "", fmt.Errorf("realtime url is empty")
		}
		if !strings.Contains(raw, "://") {
			raw = "http://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("parse api base %q: %w", apiBase, err)
		}
		u.Path = "/ws"
		u.RawQuery = ""
		u.Fragment = ""
		raw = u.String()
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse realtime url %q: %w", raw, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported realtime url scheme %q", u.Scheme)
	}
	return u.String(), nil
}
