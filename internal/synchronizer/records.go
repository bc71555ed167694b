package synchronizer

import (
	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// UpdateByID — слияние патча с элементом по id; если элемента нет — no-op.
// Патч с другим непустым id не применяется: ключ элемента не меняется.
// Возвращает true, если патч применён.
func UpdateByID[T domain.Record[T]](c *memory.Collection[T], id domain.ID, patch T) bool {
	if id.IsZero() {
		return false
	}
	if k := patch.Key(); !k.IsZero() && k != id {
		return false
	}
	found := false
	c.Mutate(func(items []T) []T {
		if i := indexOf(items, id); i >= 0 {
			items[i] = items[i].Merge(patch)
			found = true
		}
		return items
	})
	return found
}

// RemoveByID — удаление элемента по id. Возвращает true, если что-то удалено.
func RemoveByID[T domain.Record[T]](c *memory.Collection[T], id domain.ID) bool {
	if id.IsZero() {
		return false
	}
	removed := false
	c.Mutate(func(items []T) []T {
		out := items[:0]
		for _, it := range items {
			if it.Key() == id {
				removed = true
				continue
			}
			out = append(out, it)
		}
		return out
	})
	return removed
}

func indexOf[T domain.Record[T]](items []T, id domain.ID) int {
	for i := range items {
		if items[i].Key() == id {
			return i
		}
	}
	return -1
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}
