// Package eventbus carries order events from a committed unit of work to the
// configured publishers. It holds the pieces shared by every store adapter: the
// aggregate tracker, the fan-out publisher and the log publisher.
package eventbus

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

// Tracker remembers the order aggregates touched within one unit of work.
// Repositories call TrackAggregate after each successful write; the unit of work
// calls Flush after commit and Reset after rollback.
type Tracker struct {
	mu         sync.Mutex
	aggregates []*order.Order
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// TrackAggregate registers aggregate as modified. Tracking the same aggregate
// twice is harmless: its events are drained once.
func (t *Tracker) TrackAggregate(aggregate *order.Order) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.aggregates = append(t.aggregates, aggregate)
}

// Reset forgets every tracked aggregate and drops their pending events.
func (t *Tracker) Reset() {
	for _, aggregate := range t.drain() {
		aggregate.ClearDomainEvents()
	}
}

// Events drains the pending events of every tracked aggregate, in tracking order,
// and forgets the aggregates.
func (t *Tracker) Events() []order.Event {
	var events []order.Event
	for _, aggregate := range t.drain() {
		events = append(events, aggregate.DomainEvents()...)
		aggregate.ClearDomainEvents()
	}
	return events
}

// Flush publishes the drained events. Publication is best effort: the change is
// already committed, so a failure is logged and not returned.
func (t *Tracker) Flush(ctx context.Context, publisher ports.EventPublisher, logger logrus.FieldLogger) {
	events := t.Events()
	if publisher == nil || len(events) == 0 {
		return
	}

	if err := publisher.Publish(ctx, events...); err != nil {
		logger.WithError(err).WithField("events", len(events)).Error("failed to publish order events")
	}
}

func (t *Tracker) drain() []*order.Order {
	t.mu.Lock()
	defer t.mu.Unlock()

	aggregates := t.aggregates
	t.aggregates = nil
	return aggregates
}
