package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/pkg/prefs"
)

// CacheReader — чтение коллекций для внешних слоёв (HTTP).
type CacheReader interface {
	AcceptedOrders(ctx context.Context, force bool) []domain.Order
	RecentOrders(ctx context.Context, force bool) []domain.Order
	Shops(ctx context.Context, force bool) []domain.Shop
	Notifications(ctx context.Context, force bool) []domain.Notification

	Refresh(ctx context.Context, name domain.Collection) error
	RenderableOrders(ctx context.Context, name domain.Collection) ([]domain.Order, error)
}

// DriverCommands — действия водителя с оптимистичным обновлением кэша.
type DriverCommands interface {
	AcceptOrder(ctx context.Context, orderID domain.ID) error
	CompleteOrder(ctx context.Context, orderID domain.ID) error
	SetPickupTime(ctx context.Context, orderID domain.ID, at time.Time) error
	ConfirmNotification(ctx context.Context, id domain.ID) error
	DeleteNotification(ctx context.Context, id domain.ID) error
	EditNotification(ctx context.Context, id domain.ID, message string) error
	UpdateSettings(ctx context.Context, settings domain.DriverSettings) error
}

// SessionControl — вход/выход и состояние сессии.
type SessionControl interface {
	Login(ctx context.Context, s domain.Session) error
	Logout(ctx context.Context) error
	Status() domain.SessionStatus
}

// PreferencesControl — локальные настройки водителя (звук, громкость).
type PreferencesControl interface {
	Preferences() (prefs.Prefs, error)
	SavePreferences(p prefs.Prefs) (prefs.Prefs, error)
}

// DriverService — всё, что нужно HTTP-слою.
type DriverService interface {
	CacheReader
	DriverCommands
	SessionControl
	PreferencesControl
}
