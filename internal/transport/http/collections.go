package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

type listResponse[T any] struct {
	Collection domain.Collection `json:"collection"`
	Total      int               `json:"total"`
	Items      []T               `json:"items"`
}

// healthz — всегда 200; status=degraded, если realtime-канал сессии не работает.
func (h *Handler) healthz(c *gin.Context) {
	st := h.service.Status()
	status := "ok"
	if st.Active && (st.Realtime == domain.RealtimeDegraded || st.Realtime == domain.RealtimeUnavailable) {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "session": st})
}

func (h *Handler) listCollection(c *gin.Context) {
	name, err := domain.ParseCollection(c.Param("name"))
	if err != nil {
		h.writeError(c, "list collection", err)
		return
	}
	force := httpx.QueryBool(c, "force", false)
	limit, offset := httpx.ParseLimitOffset(c, defaultPageLimit, maxPageLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	switch name {
	case domain.AcceptedOrders:
		writePage(c, name, h.service.AcceptedOrders(ctx, force), limit, offset)
	case domain.RecentOrders:
		writePage(c, name, h.service.RecentOrders(ctx, force), limit, offset)
	case domain.Shops:
		writePage(c, name, h.service.Shops(ctx, force), limit, offset)
	case domain.Notifications:
		writePage(c, name, h.service.Notifications(ctx, force), limit, offset)
	}
}

func (h *Handler) refreshCollection(c *gin.Context) {
	name, err := domain.ParseCollection(c.Param("name"))
	if err != nil {
		h.writeError(c, "refresh", err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.Refresh(ctx, name); err != nil {
		h.writeError(c, "refresh "+name.String(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": name, "status": "refreshed"})
}

func (h *Handler) renderableOrders(c *gin.Context) {
	name, err := domain.ParseCollection(c.Param("name"))
	if err != nil {
		h.writeError(c, "renderable", err)
		return
	}
	if name != domain.AcceptedOrders && name != domain.RecentOrders {
		badRequest(c, "collection has no orders")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.service.RenderableOrders(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCollection) {
			badRequest(c, "collection has no orders")
			return
		}
		h.writeError(c, "renderable "+name.String(), err)
		return
	}
	c.JSON(http.StatusOK, listResponse[domain.Order]{Collection: name, Total: len(orders), Items: orders})
}

// writePage — срез items[offset:offset+limit]; total — размер всей коллекции.
func writePage[T any](c *gin.Context, name domain.Collection, items []T, limit, offset int) {
	total := len(items)
	if offset >= total {
		items = []T{}
	} else {
		items = items[offset:min(offset+limit, total)]
	}
	c.JSON(http.StatusOK, listResponse[T]{Collection: name, Total: total, Items: items})
}
