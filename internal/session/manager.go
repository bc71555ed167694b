package session

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/usecase"
	"github.com/Gunvolt24/driver_sync/pkg/prefs"
)

// ConsumerFactory — realtime-источник для сессии (WebSocket или Kafka).
type ConsumerFactory func(s domain.Session, handler ports.EventHandler) ports.MessageConsumer

// Options — параметры менеджера сессий.
type Options struct {
	// CacheEnabled=false — каждое чтение идёт прямо в REST.
	CacheEnabled bool
	Policies     map[domain.Collection]memory.Policy
	Cache        usecase.CacheOptions

	// Consumers — nil отключает realtime; остаётся только опрос.
	Consumers ConsumerFactory

	// PrefsPath — файл, где хранится сессия между запусками.
	PrefsPath string
	// ClearSnapshotsOnLogout — удалять снимки при явном выходе.
	ClearSnapshotsOnLogout bool
	// TeardownTimeout — ожидание остановки фоновых задач.
	TeardownTimeout time.Duration
}

// Manager — жизненный цикл сессии водителя. На каждую авторизованную
// сессию создаются свои хранилище, CacheService, CommandService и
// realtime-канал; Teardown останавливает всё и очищает кэш.
// До входа чтение идёт через fallback без кэша и отдаёт пустые списки.
type Manager struct {
	remote    ports.RemoteSource
	commands  ports.CommandSource
	snapshots ports.SnapshotRepository
	log       ports.Logger
	opts      Options

	opMu     sync.Mutex // сериализует Login/Logout/Teardown
	mu       sync.RWMutex
	active   *activeSession
	fallback *usecase.CacheService
	prefsMu  sync.Mutex
}

var _ ports.DriverService = (*Manager)(nil)

// NewManager — DI-конструктор. snapshots может быть nil (снимки отключены).
func NewManager(
	remote ports.RemoteSource,
	commands ports.CommandSource,
	snapshots ports.SnapshotRepository,
	log ports.Logger,
	opts Options,
) *Manager {
	if opts.TeardownTimeout <= 0 {
		opts.TeardownTimeout = 5 * time.Second
	}
	return &Manager{
		remote:    remote,
		commands:  commands,
		snapshots: snapshots,
		log:       log,
		opts:      opts,
		fallback:  usecase.NewCacheService(domain.Session{}, nil, remote, nil, log, usecase.CacheOptions{}),
	}
}

// Resume — вход по сессии, сохранённой в файле настроек.
// Возвращает false, если сохранённой сессии нет.
func (m *Manager) Resume(ctx context.Context) (bool, error) {
	p, err := m.Preferences()
	if err != nil {
		m.log.Warnf(ctx, "preferences unreadable, starting without session: %v", err)
		return false, nil
	}
	s := p.Session()
	if !s.Valid() {
		return false, nil
	}
	if err := m.Login(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}

// Login — старт сессии. Активная сессия другого пользователя сначала закрывается;
// повторный вход той же сессией ничего не делает.
func (m *Manager) Login(ctx context.Context, s domain.Session) error {
	if !s.Valid() {
		return domain.ErrNoSession
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	if cur := m.current(); cur != nil {
		if cur.session == s {
			return nil
		}
		m.stop(ctx, cur, false)
	}

	a := m.start(ctx, s)

	m.mu.Lock()
	m.active = a
	m.mu.Unlock()

	m.rememberSession(ctx, s)
	m.log.Infof(a.ctx, "session started user_id=%s cache=%t realtime=%t",
		s.UserID, a.store != nil, a.consumer != nil)
	return nil
}

// Logout — явный выход: сессия закрывается и забывается.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	cur := m.current()
	if cur == nil {
		return nil
	}
	m.stop(ctx, cur, m.opts.ClearSnapshotsOnLogout)
	m.rememberSession(ctx, domain.Session{})
	return nil
}

// Teardown — остановка без удаления снимков (завершение процесса).
// Сохранённая сессия остаётся, следующий запуск продолжит её.
func (m *Manager) Teardown(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if cur := m.current(); cur != nil {
		m.stop(ctx, cur, false)
	}
}

// Status — состояние сессии и realtime-канала.
func (m *Manager) Status() domain.SessionStatus {
	cur := m.current()
	if cur == nil {
		return domain.SessionStatus{Realtime: domain.RealtimeDisabled}
	}
	return domain.SessionStatus{
		Active:   true,
		UserID:   cur.session.UserID,
		Realtime: cur.realtimeState(),
	}
}

// Preferences — текущие локальные настройки.
func (m *Manager) Preferences() (prefs.Prefs, error) {
	m.prefsMu.Lock()
	defer m.prefsMu.Unlock()
	if m.opts.PrefsPath == "" {
		return prefs.Default(), nil
	}
	return prefs.Load(m.opts.PrefsPath)
}

// SavePreferences — звук и громкость; данные сессии меняются только через Login/Logout.
func (m *Manager) SavePreferences(p prefs.Prefs) (prefs.Prefs, error) {
	m.prefsMu.Lock()
	defer m.prefsMu.Unlock()

	cur := prefs.Default()
	if m.opts.PrefsPath != "" {
		loaded, err := prefs.Load(m.opts.PrefsPath)
		if err == nil {
			cur = loaded
		}
	}
	cur.SoundEnabled = p.SoundEnabled
	cur.Volume = p.Volume
	cur = cur.Normalize()

	if m.opts.PrefsPath == "" {
		return cur, nil
	}
	if err := prefs.Save(m.opts.PrefsPath, cur); err != nil {
		return prefs.Prefs{}, err
	}
	return cur, nil
}
