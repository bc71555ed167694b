package backoff

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	defaultInitial = time.Second
	defaultMax     = 30 * time.Second
)

// Backoff — экспоненциальная задержка повторов: удвоение от Initial до Max
// и equal-jitter, чтобы рассинхронизировать клиентов.
type Backoff struct {
	initial time.Duration
	max     time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// New — Backoff с параметрами по умолчанию для неположительных значений.
func New(initial, ceiling time.Duration) *Backoff {
	return NewWithSeed(initial, ceiling, time.Now().UnixNano())
}

// NewWithSeed — детерминированный джиттер (для тестов).
func NewWithSeed(initial, ceiling time.Duration, seed int64) *Backoff {
	if initial <= 0 {
		initial = defaultInitial
	}
	if ceiling <= 0 {
		ceiling = defaultMax
	}
	if ceiling < initial {
		ceiling = initial
	}
	return &Backoff{
		initial: initial,
		max:     ceiling,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// Initial — начальная задержка (после успеха счёт начинается с неё).
func (b *Backoff) Initial() time.Duration { return b.initial }

// Max — потолок задержки.
func (b *Backoff) Max() time.Duration { return b.max }

// Next — следующая задержка с учётом потолка.
func (b *Backoff) Next(current time.Duration) time.Duration {
	current *= 2
	if current > b.max || current <= 0 {
		return b.max
	}
	return current
}

// WithJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (b *Backoff) WithJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2

	b.mu.Lock()
	jitter := time.Duration(b.rnd.Int63n(int64(d-half) + 1))
	b.mu.Unlock()

	return half + jitter
}

// Sleep — ждёт d или отмены контекста. false — контекст отменён.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// MinDuration возвращает минимальное время из двух.
func MinDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
