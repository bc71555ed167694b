package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/gin-gonic/gin"
)

type pickupRequest struct {
	PickedUpAt time.Time `json:"picked_up_at" binding:"required"`
}

type editNotificationRequest struct {
	Message string `json:"message" binding:"required"`
}

// command — общий каркас команды водителя: id из пути, 204 при успехе.
func (h *Handler) command(c *gin.Context, op string, run func(c *gin.Context, id domain.ID) error) {
	id := domain.ID(strings.TrimSpace(c.Param("id")))
	if id.IsZero() {
		badRequest(c, "empty id")
		return
	}
	if err := run(c, id); err != nil {
		h.writeError(c, op, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) acceptOrder(c *gin.Context) {
	h.command(c, "accept order", func(c *gin.Context, id domain.ID) error {
		ctx, cancel := h.requestContext(c)
		defer cancel()
		return h.service.AcceptOrder(ctx, id)
	})
}

func (h *Handler) completeOrder(c *gin.Context) {
	h.command(c, "complete order", func(c *gin.Context, id domain.ID) error {
		ctx, cancel := h.requestContext(c)
		defer cancel()
		return h.service.CompleteOrder(ctx, id)
	})
}

func (h *Handler) setPickupTime(c *gin.Context) {
	var req pickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "picked_up_at is required (RFC 3339)")
		return
	}
	h.command(c, "set pickup time", func(c *gin.Context, id domain.ID) error {
		ctx, cancel := h.requestContext(c)
		defer cancel()
		return h.service.SetPickupTime(ctx, id, req.PickedUpAt)
	})
}

func (h *Handler) confirmNotification(c *gin.Context) {
	h.command(c, "confirm notification", func(c *gin.Context, id domain.ID) error {
		ctx, cancel := h.requestContext(c)
		defer cancel()
		return h.service.ConfirmNotification(ctx, id)
	})
}

func (h *Handler) deleteNotification(c *gin.Context) {
	h.command(c, "delete notification", func(c *gin.Context, id domain.ID) error {
		ctx, cancel := h.requestContext(c)
		defer cancel()
		return h.service.DeleteNotification(ctx, id)
	})
}

func (h *Handler) editNotification(c *gin.Context) {
	var req editNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "message is required")
		return
	}
	h.command(c, "edit notification", func(c *gin.Context, id domain.ID) error {
		ctx, cancel := h.requestContext(c)
		defer cancel()
		return h.service.EditNotification(ctx, id, req.Message)
	})
}

func (h *Handler) updateSettings(c *gin.Context) {
	var settings domain.DriverSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, "invalid settings body")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.UpdateSettings(ctx, settings); err != nil {
		h.writeError(c, "update settings", err)
		return
	}
	c.Status(http.StatusNoContent)
}
