package domain

import (
	"encoding/json"
	"time"
)

// Snapshot — сохранённое содержимое коллекции для тёплого старта.
// UpdatedAt — время исходного обновления, а не записи снимка:
// после восстановления TTL отсчитывается от него.
type Snapshot struct {
	Collection Collection
	Payload    json.RawMessage
	UpdatedAt  time.Time
}
