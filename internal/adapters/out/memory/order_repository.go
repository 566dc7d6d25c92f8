package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"icecream/internal/adapters/out/eventbus"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
	"icecream/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implements ports.OrderRepository over a Store.
type OrderRepository struct {
	store   *Store
	staged  map[order.ID]*order.Order
	tracker *eventbus.Tracker
}

// NewOrderRepository returns a repository that writes straight to store and tracks
// nothing. Use a unit of work when events matter.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store, tracker: eventbus.NewTracker()}
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.HasID() {
		return order.ErrIDAlreadyAssigned
	}

	if err := aggregate.AssignID(r.store.nextID()); err != nil {
		return err
	}
	if err := r.write(aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *OrderRepository) AddAll(ctx context.Context, aggregates []*order.Order) error {
	for _, aggregate := range aggregates {
		if err := r.Add(ctx, aggregate); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.lookup(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	if err := r.write(aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return clone(o)
}

// GetForUpdate needs no extra locking: units of work already run one at a time.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.find(func(*order.Order) bool { return true })
}

func (r *OrderRepository) FindByCustomerEmail(_ context.Context, email string) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return strings.EqualFold(o.Customer().Email(), email)
	})
}

func (r *OrderRepository) FindByCustomerPhone(_ context.Context, phone string) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return o.Customer().Phone() == phone
	})
}

func (r *OrderRepository) FindByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return o.Status() == status
	})
}

func (r *OrderRepository) FindByStatusCreatedAfter(
	_ context.Context,
	status order.Status,
	after time.Time,
) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return o.Status() == status && o.CreatedAt().After(after)
	})
}

func (r *OrderRepository) FindByCustomerNameContaining(_ context.Context, part string) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return containsFold(o.Customer().Name(), part)
	})
}

func (r *OrderRepository) FindByDeliveryAddressContaining(_ context.Context, part string) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return containsFold(o.DeliveryAddress(), part)
	})
}

func (r *OrderRepository) FindCreatedBetween(_ context.Context, from, to time.Time) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return !o.CreatedAt().Before(from) && !o.CreatedAt().After(to)
	})
}

func (r *OrderRepository) FindCreatedSince(_ context.Context, since time.Time) ([]*order.Order, error) {
	found, err := r.find(func(o *order.Order) bool {
		return !o.CreatedAt().Before(since)
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(found, func(a, b *order.Order) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return found, nil
}

func (r *OrderRepository) FindStalePending(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	found, err := r.find(func(o *order.Order) bool {
		return o.Status() == order.Pending && o.CreatedAt().Before(cutoff)
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(found, func(a, b *order.Order) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return found, nil
}

func (r *OrderRepository) CountByStatus(_ context.Context, status order.Status) (int64, error) {
	var n int64
	for _, o := range r.store.snapshot(r.staged) {
		if o.Status() == status {
			n++
		}
	}
	return n, nil
}

func (r *OrderRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.snapshot(r.staged))), nil
}

func (r *OrderRepository) lookup(id order.ID) (*order.Order, bool) {
	if o, ok := r.staged[id]; ok {
		return o, true
	}
	return r.store.get(id)
}

func (r *OrderRepository) write(aggregate *order.Order) error {
	stored, err := clone(aggregate)
	if err != nil {
		return err
	}

	if r.staged != nil {
		r.staged[stored.ID()] = stored
		return nil
	}
	r.store.apply(map[order.ID]*order.Order{stored.ID(): stored})
	return nil
}

func (r *OrderRepository) find(match func(*order.Order) bool) ([]*order.Order, error) {
	var found []*order.Order
	for _, o := range r.store.snapshot(r.staged) {
		if !match(o) {
			continue
		}
		c, err := clone(o)
		if err != nil {
			return nil, err
		}
		found = append(found, c)
	}
	if found == nil {
		found = []*order.Order{}
	}
	return found, nil
}

func containsFold(s, part string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(part))
}
