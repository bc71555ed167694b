package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// UniqDriverID — уникальный id водителя на тест.
func UniqDriverID() domain.ID { return domain.ID("drv-" + UniqSuffix()) }

// MakeOrders — n заказов в статусе assigned с уникальными id.
func MakeOrders(n int) []domain.Order {
	now := time.Now().UTC().Truncate(time.Second)
	out := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Order{
			ID:              domain.ID("ord-" + UniqSuffix()),
			Status:          domain.OrderAssigned,
			DeliveryAddress: "Main st 1",
			CreatedAt:       domain.NewTimestamp(now),
		})
	}
	return out
}

// MakeSnapshot — снимок коллекции с произвольными элементами.
func MakeSnapshot[T any](name domain.Collection, items []T, updatedAt time.Time) domain.Snapshot {
	payload, _ := json.Marshal(items)
	return domain.Snapshot{Collection: name, Payload: payload, UpdatedAt: updatedAt.UTC()}
}
