package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// Start — запуск фоновой жизни сессии: предзагрузка и самовосстановление.
// Задачи живут до отмены ctx; Wait дожидается их завершения.
func (s *CacheService) Start(ctx context.Context) {
	s.bg = ctx
	s.SchedulePreload(ctx)
	s.StartMaintenance(ctx)
}

// SchedulePreload — первая загрузка каждой коллекции через её PreloadDelay.
// Задержки разные, поэтому первые запросы не уходят одновременно.
func (s *CacheService) SchedulePreload(ctx context.Context) {
	if s.store == nil {
		return
	}
	for _, e := range s.store.Entries() {
		name := e.Name()
		delay := e.Policy().PreloadDelay

		s.goBackground(ctx, func(ctx context.Context) {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			if e.IsFresh(s.now()) {
				return
			}
			if err := s.Refresh(ctx, name); err != nil {
				s.log.Warnf(ctx, "preload failed collection=%s err=%v", name, err)
			}
		})
	}
}

// StartMaintenance — периодический Sweep до отмены ctx.
func (s *CacheService) StartMaintenance(ctx context.Context) {
	if s.store == nil {
		return
	}
	s.goBackground(ctx, func(ctx context.Context) {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	})
}

// Sweep — перезагружает коллекции, которые уже заполнялись и устарели.
// Возвращает имена коллекций, для которых запускалась перезагрузка.
func (s *CacheService) Sweep(ctx context.Context) []domain.Collection {
	if s.store == nil {
		return nil
	}
	now := s.now()
	var refreshed []domain.Collection
	for _, e := range s.store.Entries() {
		if !e.Populated() || e.Loading() || e.IsFresh(now) {
			continue
		}
		refreshed = append(refreshed, e.Name())
		if err := s.Refresh(ctx, e.Name()); err != nil {
			s.log.Warnf(ctx, "self-heal refresh failed collection=%s err=%v", e.Name(), err)
		}
	}
	return refreshed
}

// RestoreSnapshots — тёплый старт из сохранённых снимков.
// Снимок восстанавливается с исходным временем обновления, поэтому
// устаревший снимок отдаётся, пока предзагрузка его не обновит.
func (s *CacheService) RestoreSnapshots(ctx context.Context) error {
	if s.store == nil || s.snapshots == nil {
		return nil
	}
	snaps, err := s.snapshots.Load(ctx, s.session.UserID)
	if err != nil {
		return fmt.Errorf("load snapshots: %w", err)
	}

	for _, snap := range snaps {
		var (
			n       int
			restErr error
		)
		switch snap.Collection {
		case domain.AcceptedOrders:
			n, restErr = restoreInto(s.store.AcceptedOrders, snap)
		case domain.RecentOrders:
			n, restErr = restoreInto(s.store.RecentOrders, snap)
		case domain.Shops:
			n, restErr = restoreInto(s.store.Shops, snap)
		case domain.Notifications:
			n, restErr = restoreInto(s.store.Notifications, snap)
		default:
			s.log.Warnf(ctx, "unknown snapshot collection=%s skipped", snap.Collection)
			continue
		}
		if restErr != nil {
			s.log.Warnf(ctx, "snapshot decode failed collection=%s err=%v", snap.Collection, restErr)
			continue
		}
		s.log.Infof(ctx, "snapshot restored collection=%s items=%d updated_at=%s",
			snap.Collection, n, snap.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}
