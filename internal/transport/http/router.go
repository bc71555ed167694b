package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/pkg/ctxmeta"
	"github.com/Gunvolt24/driver_sync/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const requestSource = "api"

// Handler — локальный API агента водителя поверх DriverService.
type Handler struct {
	service ports.DriverService
	log     ports.Logger
	timeout time.Duration // 0 — без таймаута на обработку
}

func NewHandler(service ports.DriverService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — gin-роутер. otelServiceName пустой — без трейсинга запросов.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", h.healthz)

	api := r.Group("/api")
	{
		api.GET("/collections/:name", h.listCollection)
		api.POST("/collections/:name/refresh", h.refreshCollection)
		api.GET("/collections/:name/renderable", h.renderableOrders)

		api.POST("/orders/:id/accept", h.acceptOrder)
		api.POST("/orders/:id/complete", h.completeOrder)
		api.PUT("/orders/:id/pickup", h.setPickupTime)

		api.POST("/notifications/:id/confirm", h.confirmNotification)
		api.PATCH("/notifications/:id", h.editNotification)
		api.DELETE("/notifications/:id", h.deleteNotification)

		api.PUT("/settings", h.updateSettings)

		api.GET("/session", h.sessionStatus)
		api.POST("/session", h.login)
		api.DELETE("/session", h.logout)

		api.GET("/preferences", h.getPreferences)
		api.PUT("/preferences", h.putPreferences)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// requestContext — контекст запроса с источником "api" и таймаутом обработки.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := ctxmeta.WithSource(c.Request.Context(), requestSource)
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}
