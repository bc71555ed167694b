package session

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/usecase"
	"github.com/Gunvolt24/driver_sync/pkg/ctxmeta"
	"github.com/Gunvolt24/driver_sync/pkg/prefs"
)

// activeSession — всё, что живёт ровно одну сессию.
type activeSession struct {
	session  domain.Session
	ctx      context.Context
	cancel   context.CancelFunc
	store    *memory.Store
	cache    *usecase.CacheService
	commands *usecase.CommandService

	consumer     ports.MessageConsumer
	consumerDone chan struct{}
	realtime     atomic.Value // domain.RealtimeState
	expiring     atomic.Bool
}

type realtimeStatuser interface {
	Status() domain.RealtimeState
}

func (a *activeSession) setRealtime(s domain.RealtimeState) { a.realtime.Store(s) }

func (a *activeSession) realtimeState() domain.RealtimeState {
	stored, _ := a.realtime.Load().(domain.RealtimeState)
	if stored == domain.RealtimeUnavailable || stored == domain.RealtimeDisabled {
		return stored
	}
	if st, ok := a.consumer.(realtimeStatuser); ok {
		return st.Status()
	}
	return stored
}

func (m *Manager) current() *activeSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// start — сборка зависимостей сессии и запуск фоновых задач.
func (m *Manager) start(ctx context.Context, s domain.Session) *activeSession {
	runCtx, cancel := context.WithCancel(ctxmeta.WithDriverID(context.Background(), s.UserID.String()))
	a := &activeSession{session: s, ctx: runCtx, cancel: cancel}
	a.setRealtime(domain.RealtimeDisabled)

	expire := func(context.Context) { m.expire(a) }

	cacheOpts := m.opts.Cache
	cacheOpts.OnUnauthorized = expire

	var snapshots ports.SnapshotRepository
	if m.opts.CacheEnabled {
		a.store = memory.NewStore(m.opts.Policies)
		snapshots = m.snapshots
	}
	a.cache = usecase.NewCacheService(s, a.store, m.remote, snapshots, m.log, cacheOpts)
	a.commands = usecase.NewCommandService(s, m.commands, a.cache.Synchronizer(), m.log, expire)

	// без хранилища нечего восстанавливать и нечего патчить событиями
	if a.store == nil {
		return a
	}

	if err := a.cache.RestoreSnapshots(ctx); err != nil {
		m.log.Warnf(runCtx, "snapshot restore failed: %v", err)
	}
	a.cache.Start(runCtx)

	if m.opts.Consumers != nil {
		dispatcher := usecase.NewEventDispatcher(s.UserID, a.cache.Synchronizer(), m.log,
			func(ctx context.Context, ev domain.EventType) {
				m.log.Warnf(ctx, "session closed by server event=%s", ev)
				m.expire(a)
			})
		a.consumer = m.opts.Consumers(s, dispatcher)
	}
	if a.consumer != nil {
		a.consumerDone = make(chan struct{})
		a.setRealtime(domain.RealtimeConnecting)
		go m.runConsumer(a)
	}
	return a
}

// runConsumer — realtime-канал сессии. Его остановка не закрывает сессию,
// кроме 401: кэш продолжает жить на опросе.
func (m *Manager) runConsumer(a *activeSession) {
	defer close(a.consumerDone)

	if _, ok := a.consumer.(realtimeStatuser); !ok {
		a.setRealtime(domain.RealtimeConnected)
	}

	err := a.consumer.Run(a.ctx)
	switch {
	case a.ctx.Err() != nil:
		return
	case errors.Is(err, domain.ErrUnauthorized):
		a.setRealtime(domain.RealtimeUnavailable)
		m.log.Errorf(a.ctx, "realtime unauthorized, closing session")
		m.expire(a)
	case err != nil:
		a.setRealtime(domain.RealtimeUnavailable)
		m.log.Warnf(a.ctx, "realtime stopped, continuing on polling: %v", err)
	default:
		a.setRealtime(domain.RealtimeUnavailable)
	}
}

// stop — отмена фоновых задач, ожидание их завершения и очистка кэша.
func (m *Manager) stop(ctx context.Context, a *activeSession, clearSnapshots bool) {
	m.mu.Lock()
	if m.active == a {
		m.active = nil
	}
	m.mu.Unlock()

	a.cancel()
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			m.log.Warnf(a.ctx, "realtime close: %v", err)
		}
	}

	done := make(chan struct{})
	go func() {
		if a.consumerDone != nil {
			<-a.consumerDone
		}
		a.cache.Wait()
		close(done)
	}()

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.opts.TeardownTimeout)
	defer cancel()
	select {
	case <-done:
	case <-waitCtx.Done():
		m.log.Warnf(a.ctx, "session teardown timed out after %s", m.opts.TeardownTimeout)
	}

	if a.store != nil {
		a.store.Reset()
	}
	if clearSnapshots && m.snapshots != nil {
		if err := m.snapshots.Delete(waitCtx, a.session.UserID); err != nil {
			m.log.Warnf(a.ctx, "delete snapshots: %v", err)
		}
	}
	m.log.Infof(a.ctx, "session closed user_id=%s", a.session.UserID)
}

// expire — закрытие сессии по 401 или серверному событию. Выполняется
// асинхронно: вызывается из фоновых задач, которых stop дожидается.
func (m *Manager) expire(a *activeSession) {
	if !a.expiring.CompareAndSwap(false, true) {
		return
	}
	go func() {
		m.opMu.Lock()
		defer m.opMu.Unlock()

		if m.current() != a {
			return
		}
		m.stop(context.Background(), a, false)
		m.rememberSession(context.Background(), domain.Session{})
	}()
}

// rememberSession — запись сессии в файл настроек; пустая сессия стирает её.
func (m *Manager) rememberSession(ctx context.Context, s domain.Session) {
	if m.opts.PrefsPath == "" {
		return
	}
	m.prefsMu.Lock()
	defer m.prefsMu.Unlock()

	p, err := prefs.Load(m.opts.PrefsPath)
	if err != nil && !errors.Is(err, prefs.ErrMalformed) {
		m.log.Warnf(ctx, "load preferences: %v", err)
	}
	if err := prefs.Save(m.opts.PrefsPath, p.WithSession(s)); err != nil {
		m.log.Warnf(ctx, "save preferences: %v", err)
	}
}
