package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// CommandSource — изменяющие запросы к REST API.
type CommandSource interface {
	// AcceptOrder — принять заказ; сервер может вернуть заказ целиком (или nil).
	AcceptOrder(ctx context.Context, s domain.Session, orderID domain.ID) (*domain.RawOrder, error)
	CompleteOrder(ctx context.Context, s domain.Session, orderID domain.ID) error
	SetPickupTime(ctx context.Context, s domain.Session, orderID domain.ID, at time.Time) error

	ConfirmNotification(ctx context.Context, s domain.Session, id domain.ID) error
	DeleteNotification(ctx context.Context, s domain.Session, id domain.ID) error
	UpdateNotification(ctx context.Context, s domain.Session, id domain.ID, message string) error

	UpdateSettings(ctx context.Context, s domain.Session, settings domain.DriverSettings) error
}
