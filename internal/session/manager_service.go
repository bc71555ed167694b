package session

import (
	"context"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
)

// reader — кэш активной сессии или fallback без сессии.
func (m *Manager) reader() ports.CacheReader {
	if cur := m.current(); cur != nil {
		return cur.cache
	}
	return m.fallback
}

func (m *Manager) AcceptedOrders(ctx context.Context, force bool) []domain.Order {
	return m.reader().AcceptedOrders(ctx, force)
}

func (m *Manager) RecentOrders(ctx context.Context, force bool) []domain.Order {
	return m.reader().RecentOrders(ctx, force)
}

func (m *Manager) Shops(ctx context.Context, force bool) []domain.Shop {
	return m.reader().Shops(ctx, force)
}

func (m *Manager) Notifications(ctx context.Context, force bool) []domain.Notification {
	return m.reader().Notifications(ctx, force)
}

func (m *Manager) Refresh(ctx context.Context, name domain.Collection) error {
	return m.reader().Refresh(ctx, name)
}

func (m *Manager) RenderableOrders(ctx context.Context, name domain.Collection) ([]domain.Order, error) {
	return m.reader().RenderableOrders(ctx, name)
}

// driverCommands — команды доступны только в активной сессии.
func (m *Manager) driverCommands() (ports.DriverCommands, error) {
	cur := m.current()
	if cur == nil {
		return nil, domain.ErrNoSession
	}
	return cur.commands, nil
}

func (m *Manager) AcceptOrder(ctx context.Context, orderID domain.ID) error {
	c, err := m.driverCommands()
	if err != nil {
		return err
	}
	return c.AcceptOrder(ctx, orderID)
}

func (m *Manager) CompleteOrder(ctx context.Context, orderID domain.ID) error {
	c, err := m.driverCommands()
	if err != nil {
		return err
	}
	return c.CompleteOrder(ctx, orderID)
}

func (m *Manager) SetPickupTime(ctx context.Context, orderID domain.ID, at time.Time) error {
	c, err := m.driverCommands()
	if err != nil {
		return err
	}
	return c.SetPickupTime(ctx, orderID, at)
}

func (m *Manager) ConfirmNotification(ctx context.Context, id domain.ID) error {
	c, err := m.driverCommands()
	if err != nil {
		return err
	}
	return c.ConfirmNotification(ctx, id)
}

func (m *Manager) DeleteNotification(ctx context.Context, id domain.ID) error {
	c, err := m.driverCommands()
	if err != nil {
		return err
	}
	return c.DeleteNotification(ctx, id)
}

func (m *Manager) EditNotification(ctx context.Context, id domain.ID, message string) error {
	c, err := m.driverCommands()
	if err != nil {
		return err
	}
	return c.EditNotification(ctx, id, message)
}

func (m *Manager) UpdateSettings(ctx context.Context, settings domain.DriverSettings) error {
	c, err := m.driverCommands()
	if err != nil {
		return err
	}
	return c.UpdateSettings(ctx, settings)
}
