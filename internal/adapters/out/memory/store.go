// Package memory keeps orders in process memory. It backs local runs without a
// database (STORAGE=memory) and the query and HTTP tests.
//
// Writes inside a unit of work are staged and become visible to other readers only
// on Commit. Units of work are serialized: Begin waits until the previous one has
// committed or rolled back, which gives GetForUpdate its locking meaning.
package memory

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"icecream/internal/core/domain/model/order"
)

// Store is the shared order table. Create one per process and hand it to
// NewUnitOfWorkFactory.
type Store struct {
	mu     sync.RWMutex
	orders map[order.ID]*order.Order
	lastID atomic.Int64

	writer chan struct{}
}

func NewStore() *Store {
	return &Store{
		orders: make(map[order.ID]*order.Order),
		writer: make(chan struct{}, 1),
	}
}

func (s *Store) nextID() order.ID {
	return order.ID(s.lastID.Add(1))
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.writer <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.writer
}

func (s *Store) get(id order.ID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) apply(staged map[order.ID]*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, o := range staged {
		s.orders[id] = o
	}
}

// snapshot returns the stored orders overlaid with staged ones, in identifier order.
func (s *Store) snapshot(staged map[order.ID]*order.Order) []*order.Order {
	s.mu.RLock()
	merged := make(map[order.ID]*order.Order, len(s.orders)+len(staged))
	for id, o := range s.orders {
		merged[id] = o
	}
	s.mu.RUnlock()

	for id, o := range staged {
		merged[id] = o
	}

	ids := make([]order.ID, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		result = append(result, merged[id])
	}
	return result
}

// clone copies an aggregate without its pending events so that callers never share
// state with the store.
func clone(o *order.Order) (*order.Order, error) {
	var eta, updatedAt = o.EstimatedDeliveryTime(), o.UpdatedAt()
	if eta != nil {
		v := *eta
		eta = &v
	}
	if updatedAt != nil {
		v := *updatedAt
		updatedAt = &v
	}
	return order.RestoreOrder(o.ID(), o.Details(), o.Status(), eta, o.CreatedAt(), updatedAt)
}
