package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports/mocks"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
	"github.com/Gunvolt24/driver_sync/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newCommands(t *testing.T, onUnauthorized func(context.Context)) (*usecase.CommandService, *mocks.MockCommandSource, *memory.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cmds := mocks.NewMockCommandSource(ctrl)
	store := memory.NewStore(nil)
	svc := usecase.NewCommandService(session, cmds, synchronizer.New(store, noopLogger{}), noopLogger{}, onUnauthorized)
	return svc, cmds, store
}

func TestAcceptOrder_OptimisticFromNotification(t *testing.T) {
	svc, cmds, store := newCommands(t, nil)
	store.Notifications.Commit([]domain.Notification{
		{ID: "n1", OrderID: "42", ShopName: "Bakery", Amount: 500, CreatedAt: domain.NewTimestamp(time.Unix(5, 0))},
	}, time.Unix(0, 0))

	cmds.EXPECT().AcceptOrder(gomock.Any(), session, domain.ID("42")).Return(nil, nil)

	require.NoError(t, svc.AcceptOrder(context.Background(), "42"))

	require.Zero(t, store.Notifications.Len())
	orders := store.AcceptedOrders.Items()
	require.Len(t, orders, 1)
	o := orders[0]
	require.Equal(t, domain.ID("42"), o.ID)
	require.Equal(t, domain.OrderAssigned, o.Status)
	require.Equal(t, session.UserID, o.DriverID)
	require.Equal(t, "Bakery", o.ShopName)
	require.Equal(t, 500.0, o.TotalAmount)
	require.NotNil(t, o.AssignedAt)
}

func TestAcceptOrder_UsesServerOrder(t *testing.T) {
	svc, cmds, store := newCommands(t, nil)
	cmds.EXPECT().AcceptOrder(gomock.Any(), session, domain.ID("42")).
		Return(&domain.RawOrder{Order: domain.Order{ID: "42", CustomerName: "Ann"}}, nil)

	require.NoError(t, svc.AcceptOrder(context.Background(), "42"))
	require.Equal(t, "Ann", store.AcceptedOrders.Items()[0].CustomerName)
}

func TestAcceptOrder_FailureLeavesCache(t *testing.T) {
	svc, cmds, store := newCommands(t, nil)
	store.Notifications.Commit([]domain.Notification{{ID: "n1", OrderID: "42"}}, time.Unix(0, 0))
	cmds.EXPECT().AcceptOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("already taken"))

	require.Error(t, svc.AcceptOrder(context.Background(), "42"))
	require.Equal(t, 1, store.Notifications.Len())
	require.Zero(t, store.AcceptedOrders.Len())
}

func TestCompleteAndPickup_PatchBothCollections(t *testing.T) {
	svc, cmds, store := newCommands(t, nil)
	store.AcceptedOrders.Commit([]domain.Order{{ID: "42", ShopName: "Bakery"}}, time.Unix(0, 0))
	store.RecentOrders.Commit([]domain.Order{{ID: "42"}}, time.Unix(0, 0))
	pickup := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	gomock.InOrder(
		cmds.EXPECT().SetPickupTime(gomock.Any(), session, domain.ID("42"), pickup).Return(nil),
		cmds.EXPECT().CompleteOrder(gomock.Any(), session, domain.ID("42")).Return(nil),
	)
	ctx := context.Background()

	require.NoError(t, svc.SetPickupTime(ctx, "42", pickup))
	require.Equal(t, domain.OrderPickedUp, store.RecentOrders.Items()[0].Status)

	require.NoError(t, svc.CompleteOrder(ctx, "42"))
	for _, o := range append(store.AcceptedOrders.Items(), store.RecentOrders.Items()...) {
		require.Equal(t, domain.OrderDelivered, o.Status)
		require.NotNil(t, o.DeliveredAt)
		require.True(t, o.PickedUpAt.Equal(pickup))
	}
	require.Equal(t, "Bakery", store.AcceptedOrders.Items()[0].ShopName)
}

func TestNotificationCommands(t *testing.T) {
	svc, cmds, store := newCommands(t, nil)
	store.Notifications.Commit([]domain.Notification{{ID: "1"}, {ID: "2"}}, time.Unix(0, 0))
	ctx := context.Background()

	cmds.EXPECT().ConfirmNotification(gomock.Any(), session, domain.ID("1")).Return(nil)
	cmds.EXPECT().UpdateNotification(gomock.Any(), session, domain.ID("1"), "on my way").Return(nil)
	cmds.EXPECT().DeleteNotification(gomock.Any(), session, domain.ID("2")).Return(nil)

	require.NoError(t, svc.ConfirmNotification(ctx, "1"))
	require.NoError(t, svc.EditNotification(ctx, "1", "on my way"))
	require.NoError(t, svc.DeleteNotification(ctx, "2"))

	require.Equal(t, []domain.Notification{
		{ID: "1", Status: domain.NotificationConfirmed, Message: "on my way"},
	}, store.Notifications.Items())
}

func TestCommand_UnauthorizedClosesSession(t *testing.T) {
	closed := 0
	svc, cmds, _ := newCommands(t, func(context.Context) { closed++ })
	cmds.EXPECT().UpdateSettings(gomock.Any(), session, gomock.Any()).Return(domain.ErrUnauthorized)

	err := svc.UpdateSettings(context.Background(), domain.DriverSettings{Available: true})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.Equal(t, 1, closed)
}
