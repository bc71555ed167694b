package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
)

// EventDispatcher — отображение realtime-событий в вызовы синхронизатора.
type EventDispatcher struct {
	self      domain.ID
	sync      *synchronizer.Synchronizer
	log       ports.Logger
	onSession func(ctx context.Context, ev domain.EventType)
	now       func() time.Time
}

var _ ports.EventHandler = (*EventDispatcher)(nil)

// NewEventDispatcher — DI-конструктор.
// onSession вызывается на события, закрывающие сессию (может быть nil).
func NewEventDispatcher(
	self domain.ID,
	sync *synchronizer.Synchronizer,
	log ports.Logger,
	onSession func(ctx context.Context, ev domain.EventType),
) *EventDispatcher {
	return &EventDispatcher{
		self:      self,
		sync:      sync,
		log:       log,
		onSession: onSession,
		now:       time.Now,
	}
}

// HandleMessage — разбор и применение одного сообщения.
// Неразборчивое сообщение — domain.ErrInvalidEvent; неизвестный тип
// логируется и игнорируется.
func (d *EventDispatcher) HandleMessage(ctx context.Context, raw []byte) error {
	var ev domain.Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		metrics.RealtimeEvents.WithLabelValues("unknown", "invalid").Inc()
		d.log.Warnf(ctx, "invalid realtime message err=%v", err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	if ev.Type == "" {
		metrics.RealtimeEvents.WithLabelValues("unknown", "invalid").Inc()
		d.log.Warnf(ctx, "realtime message without type skipped")
		return fmt.Errorf("%w: missing type", domain.ErrInvalidEvent)
	}

	applied, err := d.Dispatch(ctx, ev)
	result := "ignored"
	switch {
	case err != nil:
		result = "invalid"
	case applied:
		result = "applied"
	}
	metrics.RealtimeEvents.WithLabelValues(string(ev.Type), result).Inc()
	return err
}

// Dispatch — применение разобранного события. applied=false значит,
// что кэш не изменился (служебное, чужое или неизвестное событие).
func (d *EventDispatcher) Dispatch(ctx context.Context, ev domain.Event) (bool, error) {
	switch ev.Type {
	case domain.EventOrderAccepted:
		return d.orderAccepted(ctx, ev)
	case domain.EventOrderCompleted:
		return d.orderCompleted(ctx, ev)
	case domain.EventOrderRemoved:
		return d.orderRemoved(ctx, ev)
	case domain.EventNotification:
		return d.notification(ctx, ev)
	case domain.EventNotificationUpdate:
		return d.notificationUpdate(ctx, ev)

	case domain.EventSessionExpired, domain.EventForceLogout, domain.EventAuthError:
		d.log.Warnf(ctx, "session closed by server event=%s message=%q", ev.Type, ev.Message)
		if d.onSession != nil {
			d.onSession(ctx, ev.Type)
		}
		return false, nil

	case domain.EventAuthenticated, domain.EventPong, domain.EventHeartbeatAck:
		return false, nil

	default:
		d.log.Infof(ctx, "unknown realtime event type=%s ignored", ev.Type)
		return false, nil
	}
}

func (d *EventDispatcher) orderAccepted(ctx context.Context, ev domain.Event) (bool, error) {
	raw, err := eventOrder(ev)
	if err != nil {
		return false, err
	}
	orderID := pickID(ev.OrderID, raw.ID, raw.OrderID)
	driverID := pickID(ev.DriverID, raw.DriverID)

	if driverID.IsZero() || driverID != d.self {
		// заказ забрал другой водитель — предложение больше не актуально
		n := d.sync.RemoveNotificationsForOrder(orderID)
		if !ev.NotificationID.IsZero() && d.sync.RemoveNotification(ev.NotificationID) {
			n++
		}
		return n > 0, nil
	}

	if raw.OrderID.IsZero() {
		raw.OrderID = orderID
	}
	if raw.DriverID.IsZero() {
		raw.DriverID = driverID
	}
	if raw.Status == "" {
		raw.Status = domain.OrderAssigned
	}
	if note, ok := d.sync.FindNotificationForOrder(orderID); ok {
		fillFromNotification(&raw, note)
	}

	_, applied := d.sync.UpsertOrdered(ctx, domain.AcceptedOrders, raw)
	d.sync.RemoveNotificationsForOrder(orderID)
	return applied, nil
}

func (d *EventDispatcher) orderCompleted(_ context.Context, ev domain.Event) (bool, error) {
	raw, err := eventOrder(ev)
	if err != nil {
		return false, err
	}
	orderID := pickID(ev.OrderID, raw.ID, raw.OrderID)

	deliveredAt := ev.DeliveredAt
	if deliveredAt == nil {
		deliveredAt = raw.DeliveredAt
	}
	if deliveredAt == nil {
		deliveredAt = raw.DeliveryTime
	}
	if deliveredAt == nil || deliveredAt.IsZero() {
		deliveredAt = domain.NewTimestamp(d.now())
	}

	patch := domain.Order{Status: domain.OrderDelivered, DeliveredAt: deliveredAt}
	a := d.sync.UpdateOrder(domain.AcceptedOrders, orderID, patch)
	r := d.sync.UpdateOrder(domain.RecentOrders, orderID, patch)
	return a || r, nil
}

func (d *EventDispatcher) orderRemoved(_ context.Context, ev domain.Event) (bool, error) {
	raw, err := eventOrder(ev)
	if err != nil {
		return false, err
	}
	orderID := pickID(ev.OrderID, raw.ID, raw.OrderID)

	n := d.sync.RemoveNotificationsForOrder(orderID)
	if !ev.NotificationID.IsZero() && d.sync.RemoveNotification(ev.NotificationID) {
		n++
	}
	return n > 0, nil
}

func (d *EventDispatcher) notification(ctx context.Context, ev domain.Event) (bool, error) {
	n, err := eventNotification(ev)
	if err != nil {
		return false, err
	}
	return d.sync.UpsertPending(ctx, n), nil
}

func (d *EventDispatcher) notificationUpdate(_ context.Context, ev domain.Event) (bool, error) {
	n, err := eventNotification(ev)
	if err != nil {
		return false, err
	}
	id := pickID(n.ID, ev.NotificationID)
	n.ID = id
	return d.sync.UpdateNotification(id, n), nil
}

// eventOrder — заказ из order или data; пустой заказ, если нет ни того, ни другого.
func eventOrder(ev domain.Event) (domain.RawOrder, error) {
	if ev.Order != nil {
		return *ev.Order, nil
	}
	var raw domain.RawOrder
	if len(ev.Data) > 0 && string(ev.Data) != "null" {
		if err := json.Unmarshal(ev.Data, &raw); err != nil {
			return domain.RawOrder{}, fmt.Errorf("%w: order payload: %v", domain.ErrInvalidEvent, err)
		}
	}
	return raw, nil
}

// eventNotification — уведомление из notification или data; order_id события
// подставляется, если в самом уведомлении его нет.
func eventNotification(ev domain.Event) (domain.Notification, error) {
	var n domain.Notification
	switch {
	case ev.Notification != nil:
		n = *ev.Notification
	case len(ev.Data) > 0 && string(ev.Data) != "null":
		if err := json.Unmarshal(ev.Data, &n); err != nil {
			return domain.Notification{}, fmt.Errorf("%w: notification payload: %v", domain.ErrInvalidEvent, err)
		}
	}
	if n.ID.IsZero() {
		n.ID = ev.NotificationID
	}
	if n.OrderID.IsZero() {
		n.OrderID = ev.OrderID
	}
	return n, nil
}

// fillFromNotification — недостающие поля заказа из уведомления-предложения.
func fillFromNotification(raw *domain.RawOrder, n domain.Notification) {
	if raw.ShopName == "" {
		raw.ShopName = n.ShopName
	}
	if raw.TotalAmount == 0 {
		raw.TotalAmount = n.Amount
	}
	if raw.CreatedAt == nil {
		raw.CreatedAt = n.CreatedAt
	}
}

func pickID(ids ...domain.ID) domain.ID {
	for _, id := range ids {
		if !id.IsZero() {
			return id
		}
	}
	return ""
}
