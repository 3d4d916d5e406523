package stores

import (
	"log"
	"sync"

	"github.com/lamanila-kanishka/pos-api/models"
	"gorm.io/gorm"
)

// OfflineQueueStore buffers orders saved while connectivity is down. The
// queue persists across restarts; it is drained and cleared in one atomic
// step when connectivity transitions back to online. The flush itself is
// assumed to always succeed (the sync target is simulated).
type OfflineQueueStore struct {
	mu     sync.Mutex
	db     *gorm.DB
	online bool
	queue  []models.Order
}

// NewOfflineQueueStore loads any queued orders from the local store. The
// session starts in the online state.
func NewOfflineQueueStore(db *gorm.DB) *OfflineQueueStore {
	s := &OfflineQueueStore{
		db:     db,
		online: true,
		queue:  []models.Order{},
	}

	if data, ok := loadValue(db, KeyOfflineOrders); ok {
		if orders, err := decodeOrders(data); err != nil {
			log.Printf("Discarding offline order queue: %v", err)
		} else {
			s.queue = orders
		}
	}

	return s
}

// IsOnline reports the current connectivity state.
func (s *OfflineQueueStore) IsOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// Pending returns the number of orders awaiting sync.
func (s *OfflineQueueStore) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Orders returns a copy of the queued order snapshots.
func (s *OfflineQueueStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, len(s.queue))
	copy(orders, s.queue)
	return orders
}

// Enqueue appends a saved order, unmutated, to the offline queue.
func (s *OfflineQueueStore) Enqueue(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, order)
	saveValue(s.db, KeyOfflineOrders, s.queue)
}

// SetOnline records a connectivity change. Transitioning from offline to
// online with a non-empty queue drains the whole queue and clears it
// atomically; the drained orders are returned so the caller can report the
// sync.
func (s *OfflineQueueStore) SetOnline(online bool) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasOnline := s.online
	s.online = online

	if !online || wasOnline || len(s.queue) == 0 {
		return nil
	}

	return s.drainLocked()
}

// FlushIfOnline drains the queue when the store is already online, as
// happens at startup when queued orders survived a restart.
func (s *OfflineQueueStore) FlushIfOnline() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.online || len(s.queue) == 0 {
		return nil
	}
	return s.drainLocked()
}

func (s *OfflineQueueStore) drainLocked() []models.Order {
	flushed := s.queue
	s.queue = []models.Order{}
	saveValue(s.db, KeyOfflineOrders, s.queue)
	log.Printf("Syncing %d offline order(s)", len(flushed))
	return flushed
}
