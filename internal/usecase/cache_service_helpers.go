package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
	"github.com/Gunvolt24/driver_sync/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type fetchFunc[T any] func(ctx context.Context) ([]T, error)

type reconcileFunc[T any] func(current, fresh []T) []T

// get — чтение с перезагрузкой: свежие данные отдаются без запроса,
// иначе выполняется refill, и в любом случае возвращается содержимое кэша.
func get[T any](
	ctx context.Context,
	s *CacheService,
	coll *memory.Collection[T],
	force bool,
	fetch fetchFunc[T],
	reconcile reconcileFunc[T],
) []T {
	if !force && coll.IsFresh(s.now()) {
		metrics.CacheOps.WithLabelValues(coll.Name().String(), "hit").Inc()
		return coll.Items()
	}
	// ошибка уже залогирована; отдаём то, что есть
	_ = refill(ctx, s, coll, fetch, reconcile)
	return coll.Items()
}

// refill — одна загрузка коллекции. Если загрузка уже идёт, ничего не делает.
// Флаг загрузки снимается при любом исходе.
func refill[T any](
	ctx context.Context,
	s *CacheService,
	coll *memory.Collection[T],
	fetch fetchFunc[T],
	reconcile reconcileFunc[T],
) error {
	name := coll.Name()
	if !s.session.Valid() {
		s.log.Warnf(ctx, "refill skipped collection=%s: %v", name, domain.ErrNoSession)
		return domain.ErrNoSession
	}
	if !coll.BeginLoad() {
		return nil
	}

	ctx, span := telemetry.Start(ctx, "cache.refill", attribute.String("collection", name.String()))
	defer span.End()

	committed := false
	defer func() {
		if !committed {
			coll.Abort()
		}
	}()

	start := time.Now()
	fresh, err := fetch(ctx)
	metrics.CacheRefillDuration.WithLabelValues(name.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		metrics.CacheOps.WithLabelValues(name.String(), "refill_failed").Inc()
		s.handleFetchError(ctx, name, err)
		return err
	}

	now := s.now()
	var stored []T
	coll.CommitFunc(now, func(current []T) []T {
		if reconcile != nil {
			stored = reconcile(current, fresh)
		} else {
			stored = fresh
		}
		return stored
	})
	committed = true
	span.SetAttributes(attribute.Int("items", len(stored)))
	metrics.CacheOps.WithLabelValues(name.String(), "refill").Inc()
	s.log.Infof(ctx, "collection refilled collection=%s items=%d took=%s", name, len(stored), time.Since(start))

	saveSnapshot(ctx, s, name, stored, now)
	return nil
}

// fallback — прямой запрос без кэша (хранилище ещё не создано).
func fallback[T any](ctx context.Context, s *CacheService, name domain.Collection, fetch fetchFunc[T]) []T {
	metrics.CacheOps.WithLabelValues(name.String(), "fallback").Inc()
	if !s.session.Valid() {
		return []T{}
	}
	items, err := fetch(ctx)
	if err != nil {
		s.handleFetchError(ctx, name, err)
		return []T{}
	}
	return items
}

// handleFetchError — 401 закрывает сессию, остальные ошибки только логируются.
func (s *CacheService) handleFetchError(ctx context.Context, name domain.Collection, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		s.log.Errorf(ctx, "fetch unauthorized collection=%s, closing session", name)
		if s.onUnauthorized != nil {
			s.onUnauthorized(ctx)
		}
		return
	}
	s.log.Warnf(ctx, "fetch failed collection=%s err=%v", name, err)
}

func (s *CacheService) shopsForNormalize() []domain.Shop {
	if s.store == nil {
		return nil
	}
	return s.store.Shops.Items()
}

func (s *CacheService) fetchAccepted(ctx context.Context) ([]domain.Order, error) {
	raw, err := s.remote.FetchAcceptedOrders(ctx, s.session)
	if err != nil {
		return nil, err
	}
	return synchronizer.NormalizeAll(raw, s.shopsForNormalize()), nil
}

func (s *CacheService) fetchRecent(ctx context.Context) ([]domain.Order, error) {
	raw, err := s.remote.FetchRecentOrders(ctx, s.session)
	if err != nil {
		return nil, err
	}
	return synchronizer.NormalizeAll(raw, s.shopsForNormalize()), nil
}

func (s *CacheService) fetchShops(ctx context.Context) ([]domain.Shop, error) {
	return s.remote.FetchShops(ctx, s.session)
}

func (s *CacheService) fetchNotifications(ctx context.Context) ([]domain.Notification, error) {
	items, err := s.remote.FetchNotifications(ctx, s.session)
	if err != nil {
		return nil, err
	}
	return synchronizer.DedupPending(items), nil
}

// saveSnapshot — запись снимка коллекции; сбой не влияет на кэш.
func saveSnapshot[T any](ctx context.Context, s *CacheService, name domain.Collection, items []T, at time.Time) {
	if s.snapshots == nil {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		s.log.Warnf(ctx, "snapshot encode failed collection=%s err=%v", name, err)
		return
	}
	snap := domain.Snapshot{Collection: name, Payload: payload, UpdatedAt: at}
	if err := s.snapshots.Save(ctx, s.session.UserID, snap); err != nil {
		s.log.Warnf(ctx, "snapshot save failed collection=%s err=%v", name, err)
	}
}

// restoreInto — восстановление коллекции из снимка, если она ещё пуста.
func restoreInto[T any](coll *memory.Collection[T], snap domain.Snapshot) (int, error) {
	if coll.Populated() {
		return 0, nil
	}
	var items []T
	if err := json.Unmarshal(snap.Payload, &items); err != nil {
		return 0, err
	}
	coll.Commit(items, snap.UpdatedAt)
	return len(items), nil
}
