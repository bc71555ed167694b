package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/stretchr/testify/require"
)

var testSession = domain.Session{UserID: "17", Token: "tok"}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	require.Equal(t, "http", u.Scheme)
	require.Equal(t, "127.0.0.1:3000", u.Host)

	u, err = parseBaseURL("https://api.example.com/v1?x=1#frag")
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com", u.String())

	u, err = parseBaseURL("localhost:8080")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", u.String())
}

func TestClient_FetchCollections(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		gotAuth []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/driver/17/accepted-orders":
			_, _ = io.WriteString(w, `{"success":true,"orders":[{"id":42,"status":"assigned"}]}`)
		case "/api/recent-orders":
			_, _ = io.WriteString(w, `{"success":true,"orders":[{"order_id":"7"}]}`)
		case "/api/user/shops":
			_, _ = io.WriteString(w, `{"shops":[{"id":1,"name":"Bakery"}]}`)
		case "/api/driver/17/notifications":
			_, _ = io.WriteString(w, `{"success":true,"notifications":[{"id":"n1","order_id":42}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	accepted, err := c.FetchAcceptedOrders(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	require.Equal(t, domain.ID("42"), accepted[0].ID)

	recent, err := c.FetchRecentOrders(ctx, testSession)
	require.NoError(t, err)
	require.Equal(t, domain.ID("7"), recent[0].OrderID)

	shops, err := c.FetchShops(ctx, testSession)
	require.NoError(t, err)
	require.Equal(t, domain.Shop{ID: "1", Name: "Bakery"}, shops[0])

	notes, err := c.FetchNotifications(ctx, testSession)
	require.NoError(t, err)
	require.Equal(t, domain.ID("42"), notes[0].OrderID)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, gotAuth, 4)
	for _, h := range gotAuth {
		require.Equal(t, "Bearer tok", h)
	}
}

func TestClient_MalformedTimestampKeepsOtherOrders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"orders":[`+
			`{"id":1,"created_at":"2024-01-01T10:00:00Z"},`+
			`{"id":2,"created_at":"N/A","assigned_at":"soon","delivery_time":"?"}]}`)
	})

	orders, err := c.FetchRecentOrders(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.True(t, orders[0].Renderable())
	require.Equal(t, domain.ID("2"), orders[1].ID)
	require.False(t, orders[1].Renderable())
}

func TestClient_EscapesIDsInPath(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.EscapedPath()+"|"+r.URL.RawQuery)
		mu.Unlock()
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	ctx := context.Background()
	_, err := c.FetchAcceptedOrders(ctx, domain.Session{UserID: "a/b?x", Token: "tok"})
	require.NoError(t, err)
	require.NoError(t, c.CompleteOrder(ctx, testSession, "../7"))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{
		"/api/driver/a%2Fb%3Fx/accepted-orders|",
		"/api/orders/..%2F7/complete|",
	}, seen)
}

func TestClient_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"success":false,"error":"session expired"}`)
	})

	_, err := c.FetchShops(context.Background(), testSession)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server error", http.StatusInternalServerError, `{"success":false,"message":"db down"}`, "db down"},
		{"plain text error", http.StatusBadGateway, `bad gateway`, "status 502"},
		{"success false", http.StatusOK, `{"success":false,"error":"not allowed"}`, "not allowed"},
		{"broken json", http.StatusOK, `{"orders":`, "decode response"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.FetchRecentOrders(context.Background(), testSession)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantMsg)
			require.False(t, errors.Is(err, domain.ErrUnauthorized))
		})
	}
}

func TestClient_NoSession(t *testing.T) {
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("request must not be sent without session")
	})

	_, err := c.FetchShops(context.Background(), domain.Session{UserID: "1"})
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestClient_Commands(t *testing.T) {
	type call struct {
		method, path string
		body         map[string]any
	}
	var (
		mu    sync.Mutex
		calls []call
	)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		calls = append(calls, call{r.Method, r.URL.Path, body})
		mu.Unlock()

		if r.URL.Path == "/api/orders/42/accept" {
			_, _ = io.WriteString(w, `{"success":true,"order":{"id":42,"shop_name":"Bakery"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"success":true}`)
	})
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	order, err := c.AcceptOrder(ctx, testSession, "42")
	require.NoError(t, err)
	require.Equal(t, "Bakery", order.ShopName)
	require.NoError(t, c.CompleteOrder(ctx, testSession, "42"))
	require.NoError(t, c.SetPickupTime(ctx, testSession, "42", at))
	require.NoError(t, c.ConfirmNotification(ctx, testSession, "n1"))
	require.NoError(t, c.DeleteNotification(ctx, testSession, "n1"))
	require.NoError(t, c.UpdateNotification(ctx, testSession, "n1", "on my way"))
	require.NoError(t, c.UpdateSettings(ctx, testSession, domain.DriverSettings{Available: true, Volume: 0.5}))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 7)
	require.Equal(t, call{http.MethodPost, "/api/orders/42/accept", map[string]any{"driverId": "17"}}, calls[0])
	require.Equal(t, http.MethodPost, calls[1].method)
	require.Equal(t, "/api/orders/42/complete", calls[1].path)
	require.Equal(t, "2024-05-01T10:00:00Z", calls[2].body["pickup_time"])
	require.Equal(t, "/api/notifications/n1/confirm", calls[3].path)
	require.Equal(t, http.MethodDelete, calls[4].method)
	require.Equal(t, "on my way", calls[5].body["message"])
	require.Equal(t, "/api/driver/17/settings", calls[6].path)
	require.Equal(t, true, calls[6].body["is_available"])
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, RPS: 0.001, Burst: 1})
	require.NoError(t, err)

	require.NoError(t, c.CompleteOrder(context.Background(), testSession, "1"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = c.CompleteOrder(ctx, testSession, "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limit")
}
