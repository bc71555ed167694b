package synchronizer_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newSync(t *testing.T) (*synchronizer.Synchronizer, *memory.Store) {
	t.Helper()
	store := memory.NewStore(nil)
	return synchronizer.New(store, noopLogger{}), store
}

func ts(sec int64) *domain.Timestamp {
	return domain.NewTimestamp(time.Unix(sec, 0))
}

func pendingCount(items []domain.Notification, orderID domain.ID) int {
	n := 0
	for _, it := range items {
		if it.OrderID == orderID && it.IsPending() {
			n++
		}
	}
	return n
}

func TestUpsertPending_DedupByOrder(t *testing.T) {
	s, store := newSync(t)
	ctx := context.Background()

	s.UpsertPending(ctx, domain.Notification{ID: "n1", OrderID: "42", Status: domain.NotificationPending})
	s.UpsertPending(ctx, domain.Notification{ID: "n2", OrderID: "42"})
	s.UpsertPending(ctx, domain.Notification{ID: "n3", OrderID: "42", Status: domain.NotificationPending})
	s.UpsertPending(ctx, domain.Notification{ID: "n4", OrderID: "7", Status: domain.NotificationPending})

	items := store.Notifications.Items()
	require.Equal(t, 1, pendingCount(items, "42"))
	require.Equal(t, 1, pendingCount(items, "7"))
	require.Equal(t, domain.ID("n4"), items[0].ID, "newest goes to head")
	require.Equal(t, domain.ID("n3"), items[1].ID, "latest offer for order 42 survives")
}

func TestUpsertPending_MergeKeepsFieldsAndDedups(t *testing.T) {
	s, store := newSync(t)
	ctx := context.Background()

	s.UpsertPending(ctx, domain.Notification{ID: "a", OrderID: "42", Message: "new order", Amount: 100})
	s.UpsertPending(ctx, domain.Notification{ID: "b", OrderID: "9"})
	// b переехал на заказ 42 — теперь дубль a
	s.UpsertPending(ctx, domain.Notification{ID: "a", Title: "offer"})
	s.UpsertPending(ctx, domain.Notification{ID: "b", OrderID: "42"})

	items := store.Notifications.Items()
	require.Len(t, items, 1)
	require.Equal(t, domain.ID("b"), items[0].ID)
	require.Equal(t, 1, pendingCount(items, "42"))
}

func TestUpsertPending_ConfirmedDoesNotDedup(t *testing.T) {
	s, store := newSync(t)
	ctx := context.Background()

	s.UpsertPending(ctx, domain.Notification{ID: "old", OrderID: "42", Status: domain.NotificationConfirmed})
	s.UpsertPending(ctx, domain.Notification{ID: "new", OrderID: "42"})

	require.Len(t, store.Notifications.Items(), 2)
}

func TestUpsertPending_SkipsWithoutID(t *testing.T) {
	s, store := newSync(t)

	ok := s.UpsertPending(context.Background(), domain.Notification{OrderID: "42"})
	require.False(t, ok)
	require.Zero(t, store.Notifications.Len())
}

func TestUpdateByID_Idempotent(t *testing.T) {
	s, store := newSync(t)
	store.AcceptedOrders.Commit([]domain.Order{
		{ID: "1", Status: domain.OrderAssigned, ShopName: "Bakery"},
		{ID: "2", Status: domain.OrderAssigned},
	}, time.Unix(0, 0))

	patch := domain.Order{Status: domain.OrderDelivered, DeliveredAt: ts(100)}

	require.True(t, s.UpdateOrder(domain.AcceptedOrders, "1", patch))
	once := store.AcceptedOrders.Items()
	require.True(t, s.UpdateOrder(domain.AcceptedOrders, "1", patch))
	twice := store.AcceptedOrders.Items()

	require.Equal(t, once, twice)
	require.Equal(t, domain.OrderDelivered, twice[0].Status)
	require.Equal(t, "Bakery", twice[0].ShopName, "fields absent in patch are preserved")
}

func TestUpdateByID_MissingIsNoop(t *testing.T) {
	s, store := newSync(t)
	store.AcceptedOrders.Commit([]domain.Order{{ID: "1"}}, time.Unix(0, 0))

	require.False(t, s.UpdateOrder(domain.AcceptedOrders, "404", domain.Order{Status: domain.OrderDelivered}))
	require.False(t, s.UpdateOrder(domain.AcceptedOrders, "1", domain.Order{ID: "2", Status: domain.OrderDelivered}))
	require.Equal(t, []domain.Order{{ID: "1"}}, store.AcceptedOrders.Items())
}

func TestUpdateByID_NumericStoredIDMatchesString(t *testing.T) {
	s, store := newSync(t)

	var fromREST []domain.RawOrder
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 42, "status": "assigned"}]`), &fromREST))
	store.AcceptedOrders.Commit(synchronizer.NormalizeAll(fromREST, nil), time.Unix(0, 0))

	require.True(t, s.UpdateOrder(domain.AcceptedOrders, domain.ParseID("42"), domain.Order{Status: domain.OrderPickedUp}))
	require.Equal(t, domain.OrderPickedUp, store.AcceptedOrders.Items()[0].Status)
}

func TestRemoveNotificationsForOrder(t *testing.T) {
	s, store := newSync(t)
	store.Notifications.Commit([]domain.Notification{
		{ID: "a", OrderID: "42"},
		{ID: "b", OrderID: "7"},
		{ID: "c", OrderID: "42", Status: domain.NotificationConfirmed},
	}, time.Unix(0, 0))

	require.Equal(t, 2, s.RemoveNotificationsForOrder("42"))
	require.Equal(t, []domain.Notification{{ID: "b", OrderID: "7"}}, store.Notifications.Items())
	require.Zero(t, s.RemoveNotificationsForOrder(""))
}

func TestUpsertOrdered_NormalizesAndMergesSameID(t *testing.T) {
	s, store := newSync(t)
	ctx := context.Background()
	store.Shops.Commit([]domain.Shop{{ID: "s1", AccountID: "acc-1", Name: "Bakery", Phone: "+100"}}, time.Unix(0, 0))

	o, ok := s.UpsertOrdered(ctx, domain.AcceptedOrders, domain.RawOrder{
		OrderID:       "42",
		ShopAccountID: "acc-1",
		Order:         domain.Order{Status: domain.OrderAssigned},
	})
	require.True(t, ok)
	require.Equal(t, domain.ID("42"), o.ID)
	require.Equal(t, "Bakery", o.ShopName)

	s.UpsertOrdered(ctx, domain.AcceptedOrders, domain.RawOrder{Order: domain.Order{ID: "43"}})
	s.UpsertOrdered(ctx, domain.AcceptedOrders, domain.RawOrder{Order: domain.Order{ID: "42", CustomerName: "Ann"}})

	items := store.AcceptedOrders.Items()
	require.Len(t, items, 2)
	require.Equal(t, domain.ID("43"), items[0].ID)
	require.Equal(t, "Ann", items[1].CustomerName)
	require.Equal(t, "Bakery", items[1].ShopName)

	_, ok = s.UpsertOrdered(ctx, domain.Shops, domain.RawOrder{Order: domain.Order{ID: "1"}})
	require.False(t, ok)
}

// Push order_accepted и REST-перезагрузка приходят «одновременно»:
// в итоге одна запись #42 с объединением известных полей, в любом порядке.
func TestOrderAcceptedRace_ConvergesToUnion(t *testing.T) {
	ctx := context.Background()
	push := domain.RawOrder{OrderID: "42", Order: domain.Order{Status: domain.OrderAssigned, CustomerPhone: "+7900"}}
	rest := []domain.Order{{ID: "42", Status: domain.OrderAssigned, ShopName: "Bakery", CreatedAt: ts(10)}}

	t.Run("push then refill", func(t *testing.T) {
		s, store := newSync(t)
		s.UpsertOrdered(ctx, domain.AcceptedOrders, push)

		merged := synchronizer.ReconcileOrders(store.AcceptedOrders.Items(), rest)
		store.AcceptedOrders.Commit(merged, time.Unix(20, 0))

		items := store.AcceptedOrders.Items()
		require.Len(t, items, 1)
		require.Equal(t, "+7900", items[0].CustomerPhone)
		require.Equal(t, "Bakery", items[0].ShopName)
	})

	t.Run("refill then push", func(t *testing.T) {
		s, store := newSync(t)
		store.AcceptedOrders.Commit(synchronizer.ReconcileOrders(nil, rest), time.Unix(20, 0))
		s.UpsertOrdered(ctx, domain.AcceptedOrders, push)

		items := store.AcceptedOrders.Items()
		require.Len(t, items, 1)
		require.Equal(t, "+7900", items[0].CustomerPhone)
		require.Equal(t, "Bakery", items[0].ShopName)
		require.True(t, items[0].Renderable())
	})
}

func TestReconcileOrders_ServerDropsAndCollapsesDuplicates(t *testing.T) {
	current := []domain.Order{{ID: "1", Notes: "ring twice"}, {ID: "gone"}}
	fresh := []domain.Order{{ID: "1", Status: domain.OrderAssigned}, {ID: "2"}, {ID: "1", ShopName: "Bakery"}}

	got := synchronizer.ReconcileOrders(current, fresh)

	require.Len(t, got, 2)
	require.Equal(t, domain.Order{ID: "1", Status: domain.OrderAssigned, Notes: "ring twice", ShopName: "Bakery"}, got[0])
	require.Equal(t, domain.ID("2"), got[1].ID)
}

func TestDedupPending(t *testing.T) {
	got := synchronizer.DedupPending([]domain.Notification{
		{ID: "a", OrderID: "42"},
		{ID: "b", OrderID: "42", Status: domain.NotificationPending},
		{ID: "c", OrderID: "42", Status: domain.NotificationConfirmed},
		{ID: "d"},
		{ID: "e"},
	})

	ids := make([]domain.ID, 0, len(got))
	for _, n := range got {
		ids = append(ids, n.ID)
	}
	require.Equal(t, []domain.ID{"a", "c", "d", "e"}, ids)
}
