package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

type acceptRequest struct {
	DriverID domain.ID `json:"driverId"`
}

type pickupRequest struct {
	PickupTime time.Time `json:"pickup_time"`
}

type notificationRequest struct {
	Message string `json:"message"`
}

// AcceptOrder — POST /api/orders/{id}/accept.
func (c *Client) AcceptOrder(ctx context.Context, s domain.Session, orderID domain.ID) (*domain.RawOrder, error) {
	env, err := c.do(ctx, s, http.MethodPost, userPath("/api/orders/%s/accept", orderID), acceptRequest{DriverID: s.UserID})
	if err != nil {
		return nil, err
	}
	return env.Order, nil
}

// CompleteOrder — POST /api/orders/{id}/complete.
func (c *Client) CompleteOrder(ctx context.Context, s domain.Session, orderID domain.ID) error {
	_, err := c.do(ctx, s, http.MethodPost, userPath("/api/orders/%s/complete", orderID), nil)
	return err
}

// SetPickupTime — POST /api/orders/{id}/pickup.
func (c *Client) SetPickupTime(ctx context.Context, s domain.Session, orderID domain.ID, at time.Time) error {
	_, err := c.do(ctx, s, http.MethodPost, userPath("/api/orders/%s/pickup", orderID), pickupRequest{PickupTime: at.UTC()})
	return err
}

// ConfirmNotification — POST /api/notifications/{id}/confirm.
func (c *Client) ConfirmNotification(ctx context.Context, s domain.Session, id domain.ID) error {
	_, err := c.do(ctx, s, http.MethodPost, userPath("/api/notifications/%s/confirm", id), nil)
	return err
}

// DeleteNotification — DELETE /api/notifications/{id}.
func (c *Client) DeleteNotification(ctx context.Context, s domain.Session, id domain.ID) error {
	_, err := c.do(ctx, s, http.MethodDelete, userPath("/api/notifications/%s", id), nil)
	return err
}

// UpdateNotification — PUT /api/notifications/{id}.
func (c *Client) UpdateNotification(ctx context.Context, s domain.Session, id domain.ID, message string) error {
	_, err := c.do(ctx, s, http.MethodPut, userPath("/api/notifications/%s", id), notificationRequest{Message: message})
	return err
}

// UpdateSettings — PUT /api/driver/{userId}/settings.
func (c *Client) UpdateSettings(ctx context.Context, s domain.Session, settings domain.DriverSettings) error {
	_, err := c.do(ctx, s, http.MethodPut, userPath("/api/driver/%s/settings", s.UserID), settings)
	return err
}
