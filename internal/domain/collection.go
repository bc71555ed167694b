package domain

// Collection — имя одной из закэшированных коллекций.
type Collection string

const (
	AcceptedOrders Collection = "acceptedOrders"
	RecentOrders   Collection = "recentOrders"
	Shops          Collection = "shops"
	Notifications  Collection = "notifications"
)

// Collections — все коллекции в порядке предзагрузки.
var Collections = []Collection{AcceptedOrders, RecentOrders, Shops, Notifications}

// ParseCollection — имя коллекции из строки (например, из URL).
func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCollection
}

func (c Collection) String() string { return string(c) }

// Record — элемент коллекции: ключ и слияние с патчем.
// Merge не трогает поля, которые в патче не заданы (нулевые), поэтому
// повторное применение того же патча ничего не меняет.
type Record[T any] interface {
	Key() ID
	Merge(patch T) T
}
