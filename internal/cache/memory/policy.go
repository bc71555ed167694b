package memory

import (
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// Policy — статическая политика коллекции: TTL и задержка первой предзагрузки.
type Policy struct {
	TTL          time.Duration
	PreloadDelay time.Duration
}

// DefaultPolicies — TTL и задержки предзагрузки по умолчанию.
// Задержки разнесены, чтобы четыре первых запроса не уходили одновременно.
func DefaultPolicies() map[domain.Collection]Policy {
	return map[domain.Collection]Policy{
		domain.AcceptedOrders: {TTL: time.Minute, PreloadDelay: 500 * time.Millisecond},
		domain.RecentOrders:   {TTL: 2 * time.Minute, PreloadDelay: time.Second},
		domain.Shops:          {TTL: 10 * time.Minute, PreloadDelay: 1500 * time.Millisecond},
		domain.Notifications:  {TTL: 30 * time.Second, PreloadDelay: 2 * time.Second},
	}
}
