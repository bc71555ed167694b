package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/gin-gonic/gin"
)

// statusFor — HTTP-код и текст для ошибки сервиса.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "no active session"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "session expired"
	case errors.Is(err, domain.ErrUnknownCollection):
		return http.StatusNotFound, "unknown collection"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream timeout"
	default:
		return http.StatusBadGateway, "upstream error"
	}
}

// writeError — ответ с ошибкой; 5xx дополнительно логируются.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
	}
	c.JSON(code, gin.H{"error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
