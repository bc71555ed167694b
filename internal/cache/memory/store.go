package memory

import (
	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// Store — четыре именованные коллекции сессии водителя.
// Создаётся при старте сессии и очищается при её завершении.
type Store struct {
	AcceptedOrders *Collection[domain.Order]
	RecentOrders   *Collection[domain.Order]
	Shops          *Collection[domain.Shop]
	Notifications  *Collection[domain.Notification]
}

// NewStore — хранилище с политиками; отсутствующие в карте политики
// берутся из DefaultPolicies.
func NewStore(policies map[domain.Collection]Policy) *Store {
	resolved := DefaultPolicies()
	for name, p := range policies {
		resolved[name] = p
	}
	return &Store{
		AcceptedOrders: NewCollection[domain.Order](domain.AcceptedOrders, resolved[domain.AcceptedOrders]),
		RecentOrders:   NewCollection[domain.Order](domain.RecentOrders, resolved[domain.RecentOrders]),
		Shops:          NewCollection[domain.Shop](domain.Shops, resolved[domain.Shops]),
		Notifications:  NewCollection[domain.Notification](domain.Notifications, resolved[domain.Notifications]),
	}
}

// Entry — запись по имени коллекции.
func (s *Store) Entry(name domain.Collection) (Entry, error) {
	switch name {
	case domain.AcceptedOrders:
		return s.AcceptedOrders, nil
	case domain.RecentOrders:
		return s.RecentOrders, nil
	case domain.Shops:
		return s.Shops, nil
	case domain.Notifications:
		return s.Notifications, nil
	default:
		return nil, domain.ErrUnknownCollection
	}
}

// Orders — коллекция заказов по имени (только accepted/recent).
func (s *Store) Orders(name domain.Collection) (*Collection[domain.Order], error) {
	switch name {
	case domain.AcceptedOrders:
		return s.AcceptedOrders, nil
	case domain.RecentOrders:
		return s.RecentOrders, nil
	default:
		return nil, domain.ErrUnknownCollection
	}
}

// Entries — все записи в порядке domain.Collections.
func (s *Store) Entries() []Entry {
	return []Entry{s.AcceptedOrders, s.RecentOrders, s.Shops, s.Notifications}
}

// Reset — очистка всех коллекций (выход из сессии).
func (s *Store) Reset() {
	s.AcceptedOrders.Reset()
	s.RecentOrders.Reset()
	s.Shops.Reset()
	s.Notifications.Reset()
}

// Policy — политика коллекции по имени.
func (s *Store) Policy(name domain.Collection) (Policy, error) {
	e, err := s.Entry(name)
	if err != nil {
		return Policy{}, err
	}
	return e.Policy(), nil
}

// Names — имена коллекций хранилища.
func (s *Store) Names() []domain.Collection {
	out := make([]domain.Collection, len(domain.Collections))
	copy(out, domain.Collections)
	return out
}
