package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
)

const (
	defaultSweepInterval = 30 * time.Second
	defaultHealDelay     = 3 * time.Second
)

// CacheOptions — необязательные параметры CacheService.
type CacheOptions struct {
	SweepInterval time.Duration
	HealDelay     time.Duration

	// OnUnauthorized — вызывается при 401 от сервера (закрытие сессии).
	OnUnauthorized func(ctx context.Context)
	// Now — источник времени; в тестах подменяется.
	Now func() time.Time
}

// CacheService — единая точка чтения коллекций (Smart Memory).
// Создаётся на каждую авторизованную сессию. Чтение никогда не
// возвращает ошибку: при сбое сети отдаются последние известные данные.
// Без хранилища (store == nil) каждый вызов идёт прямо в REST без кэша.
type CacheService struct {
	session   domain.Session
	store     *memory.Store
	sync      *synchronizer.Synchronizer
	remote    ports.RemoteSource
	snapshots ports.SnapshotRepository
	log       ports.Logger

	sweepInterval  time.Duration
	healDelay      time.Duration
	onUnauthorized func(ctx context.Context)
	now            func() time.Time

	bg      context.Context // время жизни фоновых задач сессии
	wg      sync.WaitGroup
	healing map[domain.Collection]*atomic.Bool // отдельный флаг на коллекцию
}

var _ ports.CacheReader = (*CacheService)(nil)

// NewCacheService — DI-конструктор. snapshots может быть nil.
func NewCacheService(
	session domain.Session,
	store *memory.Store,
	remote ports.RemoteSource,
	snapshots ports.SnapshotRepository,
	log ports.Logger,
	opts CacheOptions,
) *CacheService {
	s := &CacheService{
		session:        session,
		store:          store,
		remote:         remote,
		snapshots:      snapshots,
		log:            log,
		sweepInterval:  opts.SweepInterval,
		healDelay:      opts.HealDelay,
		onUnauthorized: opts.OnUnauthorized,
		now:            opts.Now,
		bg:             context.Background(),
		healing: map[domain.Collection]*atomic.Bool{
			domain.AcceptedOrders: {},
			domain.RecentOrders:   {},
		},
	}
	if store != nil {
		s.sync = synchronizer.New(store, log)
	}
	if s.sweepInterval <= 0 {
		s.sweepInterval = defaultSweepInterval
	}
	if s.healDelay <= 0 {
		s.healDelay = defaultHealDelay
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Synchronizer — общий синхронизатор хранилища сессии (nil без хранилища).
func (s *CacheService) Synchronizer() *synchronizer.Synchronizer { return s.sync }

// Store — хранилище сессии (nil без хранилища).
func (s *CacheService) Store() *memory.Store { return s.store }

// Session — контекст сессии.
func (s *CacheService) Session() domain.Session { return s.session }

// AcceptedOrders — принятые водителем заказы.
func (s *CacheService) AcceptedOrders(ctx context.Context, force bool) []domain.Order {
	if s.store == nil {
		return fallback(ctx, s, domain.AcceptedOrders, s.fetchAccepted)
	}
	return get(ctx, s, s.store.AcceptedOrders, force, s.fetchAccepted, synchronizer.ReconcileOrders)
}

// RecentOrders — последние заказы.
func (s *CacheService) RecentOrders(ctx context.Context, force bool) []domain.Order {
	if s.store == nil {
		return fallback(ctx, s, domain.RecentOrders, s.fetchRecent)
	}
	return get(ctx, s, s.store.RecentOrders, force, s.fetchRecent, synchronizer.ReconcileOrders)
}

// Shops — магазины водителя.
func (s *CacheService) Shops(ctx context.Context, force bool) []domain.Shop {
	if s.store == nil {
		return fallback(ctx, s, domain.Shops, s.fetchShops)
	}
	return get(ctx, s, s.store.Shops, force, s.fetchShops, nil)
}

// Notifications — уведомления водителя.
func (s *CacheService) Notifications(ctx context.Context, force bool) []domain.Notification {
	if s.store == nil {
		return fallback(ctx, s, domain.Notifications, s.fetchNotifications)
	}
	return get(ctx, s, s.store.Notifications, force, s.fetchNotifications, nil)
}

// Refresh — принудительная перезагрузка коллекции по имени.
// В отличие от чтения, возвращает ошибку загрузки вызывающему.
func (s *CacheService) Refresh(ctx context.Context, name domain.Collection) error {
	if s.store == nil {
		return domain.ErrNoSession
	}
	switch name {
	case domain.AcceptedOrders:
		return refill(ctx, s, s.store.AcceptedOrders, s.fetchAccepted, synchronizer.ReconcileOrders)
	case domain.RecentOrders:
		return refill(ctx, s, s.store.RecentOrders, s.fetchRecent, synchronizer.ReconcileOrders)
	case domain.Shops:
		return refill(ctx, s, s.store.Shops, s.fetchShops, nil)
	case domain.Notifications:
		return refill(ctx, s, s.store.Notifications, s.fetchNotifications, nil)
	default:
		return domain.ErrUnknownCollection
	}
}

// RenderableOrders — заказы, пригодные для показа (есть id и created_at).
// Если попались неполные записи, планируется одна отложенная перезагрузка.
func (s *CacheService) RenderableOrders(ctx context.Context, name domain.Collection) ([]domain.Order, error) {
	var items []domain.Order
	switch name {
	case domain.AcceptedOrders:
		items = s.AcceptedOrders(ctx, false)
	case domain.RecentOrders:
		items = s.RecentOrders(ctx, false)
	default:
		return nil, domain.ErrUnknownCollection
	}

	out := make([]domain.Order, 0, len(items))
	for _, o := range items {
		if o.Renderable() {
			out = append(out, o)
		}
	}
	if dropped := len(items) - len(out); dropped > 0 {
		s.log.Warnf(ctx, "filtered %d malformed orders collection=%s", dropped, name)
		s.scheduleHeal(name)
	}
	return out, nil
}

// scheduleHeal — отложенная перезагрузка после неполных данных;
// пока для коллекции одна запланирована, новые для неё не ставятся.
func (s *CacheService) scheduleHeal(name domain.Collection) {
	flag, ok := s.healing[name]
	if s.store == nil || !ok || !flag.CompareAndSwap(false, true) {
		return
	}
	s.goBackground(s.bg, func(ctx context.Context) {
		defer flag.Store(false)

		timer := time.NewTimer(s.healDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		metrics.CacheOps.WithLabelValues(name.String(), "heal").Inc()
		if err := s.Refresh(ctx, name); err != nil {
			s.log.Warnf(ctx, "heal refresh failed collection=%s err=%v", name, err)
		}
	})
}

// goBackground — фоновая задача, которую дожидается Wait.
func (s *CacheService) goBackground(ctx context.Context, fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(ctx)
	}()
}

// Wait — ожидание завершения фоновых задач (после отмены контекста сессии).
func (s *CacheService) Wait() { s.wg.Wait() }
