package stores

import (
	"sync"

	"github.com/lamanila-kanishka/pos-api/models"
)

// OrderStore holds the live order session. The current order is replaced as
// a whole value on every mutation so readers never observe a partial update;
// it lives only for the session and is never persisted itself (saved orders
// go through the offline queue when the app is offline).
type OrderStore struct {
	mu      sync.Mutex
	current models.Order
}

// NewOrderStore starts a session with a fresh order.
func NewOrderStore() *OrderStore {
	return &OrderStore{current: models.NewOrder()}
}

// Current returns a snapshot of the live order.
func (s *OrderStore) Current() models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// AddItem adds a menu item to the order, incrementing the quantity of an
// existing line for the same item.
func (s *OrderStore) AddItem(item models.MenuItem) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.AddItem(item)
	return s.current
}

// UpdateQuantity sets a line's quantity exactly; zero or less removes it.
func (s *OrderStore) UpdateQuantity(itemID, quantity int) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.UpdateQuantity(itemID, quantity)
	return s.current
}

// UpdateItemPrice overrides a line's price independent of the catalog.
func (s *OrderStore) UpdateItemPrice(itemID int, price float64) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.UpdateItemPrice(itemID, price)
	return s.current
}

// ToggleNC flips the no-charge flag.
func (s *OrderStore) ToggleNC() models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.ToggleNC()
	return s.current
}

// SetGuestField sets one scalar guest/metadata field.
func (s *OrderStore) SetGuestField(field, value string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := s.current.SetGuestField(field, value)
	if err != nil {
		return s.current, err
	}
	s.current = updated
	return s.current, nil
}

// ApplyMenuItem propagates a catalog edit into the matching order line,
// keeping its quantity.
func (s *OrderStore) ApplyMenuItem(item models.MenuItem) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.ApplyMenuItem(item)
	return s.current
}

// Reset discards the current order and starts a fresh one.
func (s *OrderStore) Reset() models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.NewOrder()
	return s.current
}

// Take returns the current order snapshot and replaces it with a fresh one,
// as happens when an order is saved.
func (s *OrderStore) Take() models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := s.current
	s.current = models.NewOrder()
	return saved
}
