package synchronizer

import "github.com/Gunvolt24/driver_sync/internal/domain"

// ReconcileOrders — результат перезагрузки заказов с учётом локального знания.
// Сервер авторитетен по составу и порядку, но поля, известные только локально
// (из push-события или оптимистичной правки), переносятся в свежие элементы.
// Дубли по id внутри свежих данных схлопываются в первый.
func ReconcileOrders(current, fresh []domain.Order) []domain.Order {
	known := make(map[domain.ID]domain.Order, len(current))
	for _, o := range current {
		if !o.ID.IsZero() {
			known[o.ID] = o
		}
	}

	out := make([]domain.Order, 0, len(fresh))
	seen := make(map[domain.ID]int, len(fresh))
	for _, f := range fresh {
		if f.ID.IsZero() {
			// без id слить не с чем — оставляем как есть, отфильтрует рендер
			out = append(out, f)
			continue
		}
		if i, dup := seen[f.ID]; dup {
			out[i] = out[i].Merge(f)
			continue
		}
		if cur, ok := known[f.ID]; ok {
			f = cur.Merge(f)
		}
		seen[f.ID] = len(out)
		out = append(out, f)
	}
	return out
}

// DedupPending — в свежем списке уведомлений оставляет по одному pending
// на заказ (первое, т.е. самое новое); непривязанные к заказу не трогает.
func DedupPending(items []domain.Notification) []domain.Notification {
	out := make([]domain.Notification, 0, len(items))
	pendingByOrder := make(map[domain.ID]struct{})
	for _, n := range items {
		if n.IsPending() && !n.OrderID.IsZero() {
			if _, dup := pendingByOrder[n.OrderID]; dup {
				continue
			}
			pendingByOrder[n.OrderID] = struct{}{}
		}
		out = append(out, n)
	}
	return out
}
