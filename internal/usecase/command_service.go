package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
)

// CommandService — действия водителя: запрос к серверу, затем
// локальная правка кэша без ожидания следующей перезагрузки.
type CommandService struct {
	session        domain.Session
	commands       ports.CommandSource
	sync           *synchronizer.Synchronizer // nil — кэш не ведётся
	log            ports.Logger
	onUnauthorized func(ctx context.Context)
	now            func() time.Time
}

var _ ports.DriverCommands = (*CommandService)(nil)

// NewCommandService — DI-конструктор.
func NewCommandService(
	session domain.Session,
	commands ports.CommandSource,
	sync *synchronizer.Synchronizer,
	log ports.Logger,
	onUnauthorized func(ctx context.Context),
) *CommandService {
	return &CommandService{
		session:        session,
		commands:       commands,
		sync:           sync,
		log:            log,
		onUnauthorized: onUnauthorized,
		now:            time.Now,
	}
}

// AcceptOrder — принять заказ. Предложения по заказу убираются, заказ
// появляется в acceptedOrders (данные берутся из ответа или из уведомления).
func (c *CommandService) AcceptOrder(ctx context.Context, orderID domain.ID) error {
	order, err := c.commands.AcceptOrder(ctx, c.session, orderID)
	if err != nil {
		return c.fail(ctx, "accept order", orderID, err)
	}
	if c.sync == nil {
		return nil
	}

	var raw domain.RawOrder
	if order != nil {
		raw = *order
	}
	if raw.ID.IsZero() && raw.OrderID.IsZero() {
		raw.OrderID = orderID
	}
	if note, ok := c.sync.FindNotificationForOrder(orderID); ok {
		fillFromNotification(&raw, note)
	}
	raw.Status = domain.OrderAssigned
	raw.DriverID = c.session.UserID
	if raw.AssignedAt == nil {
		raw.AssignedAt = domain.NewTimestamp(c.now())
	}

	c.sync.RemoveNotificationsForOrder(orderID)
	c.sync.UpsertOrdered(ctx, domain.AcceptedOrders, raw)
	c.log.Infof(ctx, "order accepted order_id=%s", orderID)
	return nil
}

// CompleteOrder — отметить доставку.
func (c *CommandService) CompleteOrder(ctx context.Context, orderID domain.ID) error {
	if err := c.commands.CompleteOrder(ctx, c.session, orderID); err != nil {
		return c.fail(ctx, "complete order", orderID, err)
	}
	c.patchOrder(orderID, domain.Order{
		Status:      domain.OrderDelivered,
		DeliveredAt: domain.NewTimestamp(c.now()),
	})
	c.log.Infof(ctx, "order completed order_id=%s", orderID)
	return nil
}

// SetPickupTime — отметить время получения заказа в магазине.
func (c *CommandService) SetPickupTime(ctx context.Context, orderID domain.ID, at time.Time) error {
	if err := c.commands.SetPickupTime(ctx, c.session, orderID, at); err != nil {
		return c.fail(ctx, "set pickup time", orderID, err)
	}
	c.patchOrder(orderID, domain.Order{
		Status:     domain.OrderPickedUp,
		PickedUpAt: domain.NewTimestamp(at),
	})
	return nil
}

// ConfirmNotification — подтвердить уведомление.
func (c *CommandService) ConfirmNotification(ctx context.Context, id domain.ID) error {
	if err := c.commands.ConfirmNotification(ctx, c.session, id); err != nil {
		return c.fail(ctx, "confirm notification", id, err)
	}
	if c.sync != nil {
		c.sync.UpdateNotification(id, domain.Notification{Status: domain.NotificationConfirmed})
	}
	return nil
}

// DeleteNotification — удалить уведомление.
func (c *CommandService) DeleteNotification(ctx context.Context, id domain.ID) error {
	if err := c.commands.DeleteNotification(ctx, c.session, id); err != nil {
		return c.fail(ctx, "delete notification", id, err)
	}
	if c.sync != nil {
		c.sync.RemoveNotification(id)
	}
	return nil
}

// EditNotification — изменить текст уведомления.
func (c *CommandService) EditNotification(ctx context.Context, id domain.ID, message string) error {
	if err := c.commands.UpdateNotification(ctx, c.session, id, message); err != nil {
		return c.fail(ctx, "edit notification", id, err)
	}
	if c.sync != nil {
		c.sync.UpdateNotification(id, domain.Notification{Message: message})
	}
	return nil
}

// UpdateSettings — сохранить настройки водителя; кэш не затрагивается.
func (c *CommandService) UpdateSettings(ctx context.Context, settings domain.DriverSettings) error {
	if err := c.commands.UpdateSettings(ctx, c.session, settings); err != nil {
		return c.fail(ctx, "update settings", c.session.UserID, err)
	}
	return nil
}

func (c *CommandService) patchOrder(orderID domain.ID, patch domain.Order) {
	if c.sync == nil {
		return
	}
	c.sync.UpdateOrder(domain.AcceptedOrders, orderID, patch)
	c.sync.UpdateOrder(domain.RecentOrders, orderID, patch)
}

// fail — логирование ошибки команды; 401 дополнительно закрывает сессию.
func (c *CommandService) fail(ctx context.Context, op string, id domain.ID, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		c.log.Errorf(ctx, "%s unauthorized id=%s, closing session", op, id)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return err
	}
	c.log.Warnf(ctx, "%s failed id=%s err=%v", op, id, err)
	return err
}
