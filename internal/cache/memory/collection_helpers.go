package memory

import "time"

// isFresh — вызывается под c.mu.
func (c *Collection[T]) isFresh(now time.Time) bool {
	if len(c.data) == 0 || c.lastUpdate.IsZero() {
		return false
	}
	return now.Sub(c.lastUpdate) < c.policy.TTL
}

// cloneItems — копия слайса, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneItems[T any](items []T) []T {
	if items == nil {
		return nil
	}
	return append(make([]T, 0, len(items)), items...)
}
