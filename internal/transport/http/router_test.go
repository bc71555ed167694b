package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports/mocks"
	rest "github.com/Gunvolt24/driver_sync/internal/transport/http"
	"github.com/Gunvolt24/driver_sync/pkg/ctxmeta"
	"github.com/Gunvolt24/driver_sync/pkg/prefs"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(t *testing.T) (*mocks.MockDriverService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDriverService(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, time.Second)
	return svc, rest.NewRouter(h, "", "")
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
}

type orderPage struct {
	Collection string         `json:"collection"`
	Total      int            `json:"total"`
	Items      []domain.Order `json:"items"`
}

func TestListCollection_DefaultPage(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().AcceptedOrders(gomock.Any(), false).
		Return([]domain.Order{{ID: "a"}, {ID: "b"}})

	w := serve(r, http.MethodGet, "/api/collections/acceptedOrders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got orderPage
	decode(t, w, &got)
	if got.Collection != "acceptedOrders" || got.Total != 2 || len(got.Items) != 2 || got.Items[1].ID != "b" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestListCollection_ForceAndPaging(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().RecentOrders(gomock.Any(), true).
		Return([]domain.Order{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}})

	w := serve(r, http.MethodGet, "/api/collections/recentOrders?force=1&limit=2&offset=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got orderPage
	decode(t, w, &got)
	if got.Total != 4 || len(got.Items) != 2 || got.Items[0].ID != "2" || got.Items[1].ID != "3" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestListCollection_OffsetPastEnd(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Shops(gomock.Any(), false).Return([]domain.Shop{{ID: "s"}})

	w := serve(r, http.MethodGet, "/api/collections/shops?offset=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Fatalf("want empty items, body=%s", w.Body.String())
	}
}

func TestListCollection_Unknown_404(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/api/collections/orders", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRefreshCollection(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"ok", nil, http.StatusOK},
		{"no session", domain.ErrNoSession, http.StatusUnauthorized},
		{"expired", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"network", errors.New("dial tcp: refused"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newRouter(t)
			svc.EXPECT().Refresh(gomock.Any(), domain.Notifications).Return(tt.err)

			w := serve(r, http.MethodPost, "/api/collections/notifications/refresh", "")
			if w.Code != tt.wantCode {
				t.Fatalf("want %d, got %d, body=%s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestRenderableOrders(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().RenderableOrders(gomock.Any(), domain.AcceptedOrders).
		Return([]domain.Order{{ID: "ok"}}, nil)

	w := serve(r, http.MethodGet, "/api/collections/acceptedOrders/renderable", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got orderPage
	decode(t, w, &got)
	if got.Total != 1 || got.Items[0].ID != "ok" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestRenderableOrders_NotOrders_400(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/api/collections/shops/renderable", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestCommands_NoContent(t *testing.T) {
	pickup := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		expect func(svc *mocks.MockDriverService)
	}{
		{
			name: "accept", method: http.MethodPost, path: "/api/orders/42/accept",
			expect: func(svc *mocks.MockDriverService) {
				svc.EXPECT().AcceptOrder(gomock.Any(), domain.ID("42")).Return(nil)
			},
		},
		{
			name: "complete", method: http.MethodPost, path: "/api/orders/42/complete",
			expect: func(svc *mocks.MockDriverService) {
				svc.EXPECT().CompleteOrder(gomock.Any(), domain.ID("42")).Return(nil)
			},
		},
		{
			name: "pickup", method: http.MethodPut, path: "/api/orders/42/pickup",
			body: `{"picked_up_at":"2024-05-01T12:30:00Z"}`,
			expect: func(svc *mocks.MockDriverService) {
				svc.EXPECT().SetPickupTime(gomock.Any(), domain.ID("42"), pickup).Return(nil)
			},
		},
		{
			name: "confirm", method: http.MethodPost, path: "/api/notifications/n1/confirm",
			expect: func(svc *mocks.MockDriverService) {
				svc.EXPECT().ConfirmNotification(gomock.Any(), domain.ID("n1")).Return(nil)
			},
		},
		{
			name: "edit", method: http.MethodPatch, path: "/api/notifications/n1",
			body: `{"message":"on my way"}`,
			expect: func(svc *mocks.MockDriverService) {
				svc.EXPECT().EditNotification(gomock.Any(), domain.ID("n1"), "on my way").Return(nil)
			},
		},
		{
			name: "delete", method: http.MethodDelete, path: "/api/notifications/n1",
			expect: func(svc *mocks.MockDriverService) {
				svc.EXPECT().DeleteNotification(gomock.Any(), domain.ID("n1")).Return(nil)
			},
		},
		{
			name: "settings", method: http.MethodPut, path: "/api/settings",
			body: `{"is_available":true,"volume":0.5}`,
			expect: func(svc *mocks.MockDriverService) {
				svc.EXPECT().UpdateSettings(gomock.Any(), domain.DriverSettings{Available: true, Volume: 0.5}).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newRouter(t)
			tt.expect(svc)

			w := serve(r, tt.method, tt.path, tt.body)
			if w.Code != http.StatusNoContent {
				t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCommand_NoSession_401(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().AcceptOrder(gomock.Any(), domain.ID("1")).Return(domain.ErrNoSession)

	w := serve(r, http.MethodPost, "/api/orders/1/accept", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestCommand_BadBody_400(t *testing.T) {
	_, r := newRouter(t)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPut, "/api/orders/1/pickup", `{}`},
		{http.MethodPut, "/api/orders/1/pickup", `{"picked_up_at":"yesterday"}`},
		{http.MethodPatch, "/api/notifications/n1", `{"message":""}`},
		{http.MethodPut, "/api/settings", `not json`},
	} {
		w := serve(r, tc.method, tc.path, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s %s body=%s: want 400, got %d", tc.method, tc.path, tc.body, w.Code)
		}
	}
}

func TestCommand_PassesApiSource(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().CompleteOrder(gomock.Any(), domain.ID("7")).
		DoAndReturn(func(ctx context.Context, _ domain.ID) error {
			if src, _ := ctxmeta.SourceFromContext(ctx); src != "api" {
				t.Errorf("want source=api, got %q", src)
			}
			if _, ok := ctxmeta.RequestIDFromContext(ctx); !ok {
				t.Error("request id is missing")
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Error("handler timeout is not applied")
			}
			return nil
		})

	w := serve(r, http.MethodPost, "/api/orders/7/complete", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", w.Code)
	}
}

func TestSession_LoginStatusLogout(t *testing.T) {
	svc, r := newRouter(t)
	want := domain.Session{UserID: "17", Token: "tok"}
	status := domain.SessionStatus{Active: true, UserID: "17", Realtime: domain.RealtimeConnecting}

	gomock.InOrder(
		svc.EXPECT().Login(gomock.Any(), want).Return(nil),
		svc.EXPECT().Status().Return(status),
		svc.EXPECT().Logout(gomock.Any()).Return(nil),
	)

	w := serve(r, http.MethodPost, "/api/session", `{"user_id":"17","token":"tok"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.SessionStatus
	decode(t, w, &got)
	if got != status {
		t.Fatalf("unexpected status: %+v", got)
	}

	w = serve(r, http.MethodDelete, "/api/session", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout: want 204, got %d", w.Code)
	}
}

func TestSession_LoginInvalid_400(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Login(gomock.Any(), domain.Session{UserID: "17"}).Return(domain.ErrNoSession)

	w := serve(r, http.MethodPost, "/api/session", `{"user_id":"17"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestPreferences_GetHidesSession(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Preferences().Return(prefs.Prefs{
		UserID: "17", SessionToken: "secret", SoundEnabled: true, Volume: 0.4,
	}, nil)

	w := serve(r, http.MethodGet, "/api/preferences", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Fatalf("session token leaked: %s", w.Body.String())
	}
	var got map[string]any
	decode(t, w, &got)
	if got["sound_enabled"] != true || got["volume"] != 0.4 {
		t.Fatalf("unexpected preferences: %v", got)
	}
}

func TestPreferences_Put(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().SavePreferences(prefs.Prefs{SoundEnabled: false, Volume: 2}).
		Return(prefs.Prefs{SoundEnabled: false, Volume: 1}, nil)

	w := serve(r, http.MethodPut, "/api/preferences", `{"sound_enabled":false,"volume":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got map[string]any
	decode(t, w, &got)
	if got["volume"] != 1.0 {
		t.Fatalf("want clamped volume, got %v", got)
	}
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name   string
		status domain.SessionStatus
		want   string
	}{
		{"no session", domain.SessionStatus{Realtime: domain.RealtimeDisabled}, "ok"},
		{"connected", domain.SessionStatus{Active: true, Realtime: domain.RealtimeConnected}, "ok"},
		{"degraded", domain.SessionStatus{Active: true, Realtime: domain.RealtimeDegraded}, "degraded"},
		{"unavailable", domain.SessionStatus{Active: true, Realtime: domain.RealtimeUnavailable}, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newRouter(t)
			svc.EXPECT().Status().Return(tt.status)

			w := serve(r, http.MethodGet, "/healthz", "")
			if w.Code != http.StatusOK {
				t.Fatalf("want 200, got %d", w.Code)
			}
			var got struct {
				Status string `json:"status"`
			}
			decode(t, w, &got)
			if got.Status != tt.want {
				t.Fatalf("want status=%s, got %s", tt.want, got.Status)
			}
		})
	}
}

func TestNoRoute_404(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/no-such-route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/api/orders/1/accept", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPing_200(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
