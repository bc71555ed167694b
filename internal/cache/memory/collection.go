package memory

import (
	"sync"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
)

// Entry — представление записи кэша без параметра типа:
// нужно фоновым задачам, которые работают с коллекциями по имени.
type Entry interface {
	Name() domain.Collection
	Policy() Policy
	IsFresh(now time.Time) bool
	Populated() bool
	Loading() bool
	LastUpdate() time.Time
	Len() int
	Invalidate()
}

// Collection — одна именованная запись кэша: данные, время последнего
// обновления и флаг загрузки. Потокобезопасна.
type Collection[T any] struct {
	name   domain.Collection
	policy Policy

	mu         sync.Mutex
	data       []T
	lastUpdate time.Time // нулевое значение — ни разу не заполнялась
	loading    bool
}

var _ Entry = (*Collection[domain.Shop])(nil)

// NewCollection — пустая коллекция с заданной политикой.
func NewCollection[T any](name domain.Collection, policy Policy) *Collection[T] {
	return &Collection[T]{name: name, policy: policy}
}

func (c *Collection[T]) Name() domain.Collection { return c.name }

func (c *Collection[T]) Policy() Policy { return c.policy }

// IsFresh — есть данные и с последнего обновления прошло меньше TTL.
func (c *Collection[T]) IsFresh(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isFresh(now)
}

// BeginLoad — check-and-set флага загрузки. false означает, что
// обновление уже идёт и второй вызывающий должен отдать текущие данные.
func (c *Collection[T]) BeginLoad() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading {
		metrics.CacheOps.WithLabelValues(c.name.String(), "busy").Inc()
		return false
	}
	c.loading = true
	return true
}

// Commit — заменяет данные, фиксирует время обновления и снимает флаг загрузки.
func (c *Collection[T]) Commit(data []T, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = cloneItems(data)
	c.lastUpdate = now
	c.loading = false
	metrics.CacheSize.WithLabelValues(c.name.String()).Set(float64(len(c.data)))
}

// CommitFunc — как Commit, но новые данные вычисляются из текущих под
// той же блокировкой: правки, пришедшие во время загрузки, не теряются.
func (c *Collection[T]) CommitFunc(now time.Time, fn func(current []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = cloneItems(fn(cloneItems(c.data)))
	c.lastUpdate = now
	c.loading = false
	metrics.CacheSize.WithLabelValues(c.name.String()).Set(float64(len(c.data)))
}

// Abort — снимает флаг загрузки без изменения данных (аналог finally).
func (c *Collection[T]) Abort() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

// Invalidate — помечает данные устаревшими, сами данные остаются
// и отдаются, если следующее обновление не удастся.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.lastUpdate = time.Time{}
	c.mu.Unlock()
}

// Items — копия текущих данных.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneItems(c.data)
}

// Mutate — атомарное чтение-изменение-запись данных.
// Время обновления не меняется: локальная правка не делает данные свежими.
func (c *Collection[T]) Mutate(fn func(items []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = fn(cloneItems(c.data))
	metrics.CacheSize.WithLabelValues(c.name.String()).Set(float64(len(c.data)))
}

// Populated — коллекция хотя бы раз заполнялась или содержит данные.
func (c *Collection[T]) Populated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.lastUpdate.IsZero() || len(c.data) > 0
}

func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Collection[T]) LastUpdate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUpdate
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Reset — возвращает коллекцию в исходное пустое состояние.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = nil
	c.lastUpdate = time.Time{}
	c.loading = false
	metrics.CacheSize.WithLabelValues(c.name.String()).Set(0)
}
