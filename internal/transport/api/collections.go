package api

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// FetchAcceptedOrders — GET /api/driver/{userId}/accepted-orders.
func (c *Client) FetchAcceptedOrders(ctx context.Context, s domain.Session) ([]domain.RawOrder, error) {
	env, err := c.do(ctx, s, http.MethodGet, userPath("/api/driver/%s/accepted-orders", s.UserID), nil)
	if err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// FetchRecentOrders — GET /api/recent-orders.
func (c *Client) FetchRecentOrders(ctx context.Context, s domain.Session) ([]domain.RawOrder, error) {
	env, err := c.do(ctx, s, http.MethodGet, "/api/recent-orders", nil)
	if err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// FetchShops — GET /api/user/shops.
func (c *Client) FetchShops(ctx context.Context, s domain.Session) ([]domain.Shop, error) {
	env, err := c.do(ctx, s, http.MethodGet, "/api/user/shops", nil)
	if err != nil {
		return nil, err
	}
	return env.Shops, nil
}

// FetchNotifications — GET /api/driver/{userId}/notifications.
func (c *Client) FetchNotifications(ctx context.Context, s domain.Session) ([]domain.Notification, error) {
	env, err := c.do(ctx, s, http.MethodGet, userPath("/api/driver/%s/notifications", s.UserID), nil)
	if err != nil {
		return nil, err
	}
	return env.Notifications, nil
}
