package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/pkg/prefs"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// preferencesView — настройки без данных сессии.
type preferencesView struct {
	SoundEnabled bool    `json:"sound_enabled"`
	Volume       float64 `json:"volume"`
}

func viewOf(p prefs.Prefs) preferencesView {
	return preferencesView{SoundEnabled: p.SoundEnabled, Volume: p.Volume}
}

func (h *Handler) sessionStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid login body")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	s := domain.Session{UserID: domain.ID(req.UserID), Token: req.Token}
	if err := h.service.Login(ctx, s); err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			badRequest(c, "user_id and token are required")
			return
		}
		h.writeError(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, h.service.Status())
}

func (h *Handler) logout(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.Logout(ctx); err != nil {
		h.writeError(c, "logout", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getPreferences(c *gin.Context) {
	p, err := h.service.Preferences()
	if err != nil && !errors.Is(err, prefs.ErrMalformed) {
		h.log.Errorf(c.Request.Context(), "load preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, viewOf(p))
}

func (h *Handler) putPreferences(c *gin.Context) {
	var req preferencesView
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid preferences body")
		return
	}
	saved, err := h.service.SavePreferences(prefs.Prefs{SoundEnabled: req.SoundEnabled, Volume: req.Volume})
	if err != nil {
		h.log.Errorf(c.Request.Context(), "save preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, viewOf(saved))
}
