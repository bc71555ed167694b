//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	ikafka "github.com/Gunvolt24/driver_sync/internal/kafka"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
	"github.com/Gunvolt24/driver_sync/internal/testutil"
	"github.com/Gunvolt24/driver_sync/internal/usecase"
	"github.com/Gunvolt24/driver_sync/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// 1) Уведомление для водителя попадает в кэш; мусор и чужие события пропускаются
func TestKafka_Notification_Applied_TC(t *testing.T) {
	ctx, cancel, logg, kf := newStack(t)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	driver := testutil.UniqDriverID()
	store, dispatcher := newDispatcher(driver, logg)

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		DriverID:       driver,
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, dispatcher, logg)
	t.Cleanup(func() { _ = consumer.Close() })

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)

	// 1) Мусор
	writeMsg(t, ctx, kf.Brokers, topic, []byte(driver), []byte("not-a-json"))
	// 2) Событие другому водителю
	writeMsg(t, ctx, kf.Brokers, topic, []byte("someone-else"), notificationEvent("n-foreign", "o-foreign"))
	// 3) Своё событие
	writeMsg(t, ctx, kf.Brokers, topic, []byte(driver), notificationEvent("n-1", "o-1"))

	waitFor(t, 20*time.Second, func() bool { return store.Notifications.Len() == 1 })

	items := store.Notifications.Items()
	require.Equal(t, domain.ID("n-1"), items[0].ID)
	require.Equal(t, domain.ID("o-1"), items[0].OrderID)
}

// 2) order_accepted другим водителем убирает предложение из кэша
func TestKafka_OrderAcceptedByOther_RemovesOffer_TC(t *testing.T) {
	ctx, cancel, logg, kf := newStack(t)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-accepted-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	driver := testutil.UniqDriverID()
	store, dispatcher := newDispatcher(driver, logg)

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: "first",
		DriverID:    driver,
	}, dispatcher, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()
	time.Sleep(1500 * time.Millisecond)

	writeMsg(t, ctx, kf.Brokers, topic, []byte(driver), notificationEvent("n-2", "o-2"))
	waitFor(t, 20*time.Second, func() bool { return store.Notifications.Len() == 1 })

	accepted, _ := json.Marshal(domain.Event{Type: domain.EventOrderAccepted, OrderID: "o-2", DriverID: "other"})
	// рассылка всем водителям — без ключа
	writeMsg(t, ctx, kf.Brokers, topic, nil, accepted)

	waitFor(t, 20*time.Second, func() bool { return store.Notifications.Len() == 0 })
	require.Equal(t, 0, store.AcceptedOrders.Len())
}

// 3) At-least-once через рестарт: при временной ошибке и отсутствии коммита — передоставка после перезапуска
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	ctx, cancel, logg, kf := newStack(t)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	driver := testutil.UniqDriverID()
	writeMsg(t, ctx, kf.Brokers, topic, []byte(driver), notificationEvent("n-3", "o-3"))

	// Фаза 1: всегда временная ошибка => оффсет НЕ коммитится
	consumerFail := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		DriverID:       driver,
		ProcessTimeout: 300 * time.Millisecond,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       300 * time.Millisecond,
	}, alwaysTempFail{}, logg)

	runCtx1, cancelRun1 := context.WithCancel(ctx)
	go func() { _ = consumerFail.Run(runCtx1) }()

	// Ждём немного, чтобы сообщение точно было Fetch'ed и обработка упала
	time.Sleep(2 * time.Second)
	cancelRun1()
	_ = consumerFail.Close()

	// Фаза 2: та же группа с настоящим диспетчером
	store, dispatcher := newDispatcher(driver, logg)
	consumerOK := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: "first",
		DriverID:    driver,
	}, dispatcher, logg)

	runCtx2, cancelRun2 := context.WithCancel(ctx)
	defer cancelRun2()
	go func() { _ = consumerOK.Run(runCtx2) }()

	waitFor(t, 25*time.Second, func() bool { return store.Notifications.Len() == 1 })
}

// -----------------функции-помощники-----------------

func newStack(t *testing.T) (ctx context.Context, cancel func(), logg ports.Logger, kf *testutil.KafkaEnv) {
	t.Helper()

	// Длинный контекст — на контейнер
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "driver-events-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	zl, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	// Короткий контекст — сам тест
	ctx, cancel = context.WithTimeout(context.Background(), 60*time.Second)
	return ctx, cancel, zl, kf
}

func newDispatcher(driver domain.ID, logg ports.Logger) (*cachemem.Store, *usecase.EventDispatcher) {
	store := cachemem.NewStore(nil)
	sync := synchronizer.New(store, logg)
	return store, usecase.NewEventDispatcher(driver, sync, logg, nil)
}

func notificationEvent(id, orderID domain.ID) []byte {
	raw, _ := json.Marshal(domain.Event{
		Type:         domain.EventNotification,
		Notification: &domain.Notification{ID: id, OrderID: orderID, Status: domain.NotificationPending},
	})
	return raw
}

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, key, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Key: key, Value: payload}))
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// временная "сетеподобная" ошибка
type tempNetErr struct{}

func (tempNetErr) Error() string   { return "temporary failure" }
func (tempNetErr) Temporary() bool { return true }
func (tempNetErr) Timeout() bool   { return true } // как у net.Error

type alwaysTempFail struct{}

func (alwaysTempFail) HandleMessage(context.Context, []byte) error { return tempNetErr{} }
