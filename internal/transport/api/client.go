package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "http://127.0.0.1:3000"
	defaultUserAgent = "driver-sync/1.0"
	defaultTimeout   = 10 * time.Second
)

// Options — параметры REST-клиента.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RPS       float64 // 0 — без ограничения
	Burst     int
	UserAgent string
}

// Client — клиент REST API платформы доставки.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

var (
	_ ports.RemoteSource  = (*Client)(nil)
	_ ports.CommandSource = (*Client)(nil)
)

// NewClient — клиент с нормализованным base URL и ограничением частоты запросов.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		limiter:   limiter,
		userAgent: ua,
	}, nil
}

// envelope — общий формат ответа API.
type envelope struct {
	Success       *bool                 `json:"success"`
	Message       string                `json:"message"`
	Error         string                `json:"error"`
	Orders        []domain.RawOrder     `json:"orders"`
	Shops         []domain.Shop         `json:"shops"`
	Notifications []domain.Notification `json:"notifications"`
	Order         *domain.RawOrder      `json:"order"`
}

func (e *envelope) failed() bool { return e.Success != nil && !*e.Success }

func (e *envelope) reason() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

func (c *Client) do(ctx context.Context, s domain.Session, method, path string, body any) (*envelope, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if !s.Valid() {
		return nil, domain.ErrNoSession
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("build url %q: %w", path, err)
	}
	reqURL := c.baseURL.ResolveReference(ref)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Bearer "+s.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("api %s %s: %w", method, path, domain.ErrUnauthorized)
	}

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	if decodeErr != nil && decodeErr != io.EOF {
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("api %s %s returned status %d", method, path, resp.StatusCode)
		}
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api %s %s returned status %d: %s", method, path, resp.StatusCode, env.reason())
	}
	if env.failed() {
		return nil, fmt.Errorf("api %s %s: %s", method, path, env.reason())
	}
	return &env, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// userPath — путь с подставленным и экранированным id.
func userPath(format string, id domain.ID) string {
	return fmt.Sprintf(format, url.PathEscape(id.String()))
}
