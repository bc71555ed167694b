package synchronizer

import (
	"context"

	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
)

// Synchronizer — применяет realtime-события и оптимистичные правки к кэшу,
// не дожидаясь полной перезагрузки коллекции. Правила слияния
// (upsert по id, дедупликация pending по заказу, патч без затирания полей)
// делают итоговое состояние независимым от порядка прихода событий.
type Synchronizer struct {
	store *memory.Store
	log   ports.Logger
}

// New — DI-конструктор.
func New(store *memory.Store, log ports.Logger) *Synchronizer {
	return &Synchronizer{store: store, log: log}
}

// Normalize — нормализация с поиском магазина в текущем кэше shops.
func (s *Synchronizer) Normalize(raw domain.RawOrder) domain.Order {
	return Normalize(raw, s.store.Shops.Items())
}

// UpsertPending — вставка/слияние уведомления.
// Элемент с тем же id сливается на месте; новый вставляется в голову.
// Любые другие pending-уведомления того же заказа удаляются:
// на один заказ остаётся одно живое предложение.
func (s *Synchronizer) UpsertPending(ctx context.Context, n domain.Notification) bool {
	if n.ID.IsZero() {
		s.log.Warnf(ctx, "notification without id skipped order_id=%s", n.OrderID)
		return false
	}

	s.store.Notifications.Mutate(func(items []domain.Notification) []domain.Notification {
		var current domain.Notification
		if i := indexOf(items, n.ID); i >= 0 {
			current = items[i].Merge(n)
			items[i] = current
		} else {
			current = n
			items = prepend(items, n)
		}

		if current.IsPending() && !current.OrderID.IsZero() {
			items = dropPendingDuplicates(items, current.OrderID, current.ID)
		}
		return items
	})
	return true
}

// UpsertOrdered — нормализует заказ и кладёт его в голову коллекции заказов.
// Разные заказы не дедуплицируются; заказ с уже известным id сливается
// с существующим (объединение известных полей), а не дублируется.
func (s *Synchronizer) UpsertOrdered(ctx context.Context, name domain.Collection, raw domain.RawOrder) (domain.Order, bool) {
	coll, err := s.store.Orders(name)
	if err != nil {
		s.log.Warnf(ctx, "upsert into non-order collection=%s skipped", name)
		return domain.Order{}, false
	}

	order := s.Normalize(raw)
	if order.ID.IsZero() {
		s.log.Warnf(ctx, "order without id skipped collection=%s", name)
		return domain.Order{}, false
	}

	coll.Mutate(func(items []domain.Order) []domain.Order {
		if i := indexOf(items, order.ID); i >= 0 {
			items[i] = items[i].Merge(order)
			order = items[i]
			return items
		}
		return prepend(items, order)
	})
	return order, true
}

// UpdateOrder — патч заказа по id в указанной коллекции.
func (s *Synchronizer) UpdateOrder(name domain.Collection, id domain.ID, patch domain.Order) bool {
	coll, err := s.store.Orders(name)
	if err != nil {
		return false
	}
	return UpdateByID(coll, id, patch)
}

// UpdateNotification — патч уведомления по id.
func (s *Synchronizer) UpdateNotification(id domain.ID, patch domain.Notification) bool {
	return UpdateByID(s.store.Notifications, id, patch)
}

// UpdateShop — патч магазина по id.
func (s *Synchronizer) UpdateShop(id domain.ID, patch domain.Shop) bool {
	return UpdateByID(s.store.Shops, id, patch)
}

// RemoveOrder — удаление заказа по id.
func (s *Synchronizer) RemoveOrder(name domain.Collection, id domain.ID) bool {
	coll, err := s.store.Orders(name)
	if err != nil {
		return false
	}
	return RemoveByID(coll, id)
}

// RemoveNotification — удаление уведомления по id.
func (s *Synchronizer) RemoveNotification(id domain.ID) bool {
	return RemoveByID(s.store.Notifications, id)
}

// RemoveNotificationsForOrder — удаляет все уведомления заказа.
// Возвращает число удалённых.
func (s *Synchronizer) RemoveNotificationsForOrder(orderID domain.ID) int {
	if orderID.IsZero() {
		return 0
	}
	removed := 0
	s.store.Notifications.Mutate(func(items []domain.Notification) []domain.Notification {
		out := items[:0]
		for _, n := range items {
			if n.OrderID == orderID {
				removed++
				continue
			}
			out = append(out, n)
		}
		return out
	})
	return removed
}

// FindNotificationForOrder — pending-уведомление заказа (если есть).
func (s *Synchronizer) FindNotificationForOrder(orderID domain.ID) (domain.Notification, bool) {
	for _, n := range s.store.Notifications.Items() {
		if n.OrderID == orderID && n.IsPending() {
			return n, true
		}
	}
	return domain.Notification{}, false
}

// dropPendingDuplicates — убирает pending-уведомления заказа orderID, кроме keepID.
func dropPendingDuplicates(items []domain.Notification, orderID, keepID domain.ID) []domain.Notification {
	out := items[:0]
	for _, n := range items {
		if n.ID != keepID && n.OrderID == orderID && n.IsPending() {
			continue
		}
		out = append(out, n)
	}
	return out
}
