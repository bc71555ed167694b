package ports

import (
	"context"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// RemoteSource — REST-источник коллекций.
// 401 от сервера возвращается как domain.ErrUnauthorized.
type RemoteSource interface {
	FetchAcceptedOrders(ctx context.Context, s domain.Session) ([]domain.RawOrder, error)
	FetchRecentOrders(ctx context.Context, s domain.Session) ([]domain.RawOrder, error)
	FetchShops(ctx context.Context, s domain.Session) ([]domain.Shop, error)
	FetchNotifications(ctx context.Context, s domain.Session) ([]domain.Notification, error)
}
