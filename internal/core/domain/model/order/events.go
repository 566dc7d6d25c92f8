package order

import (
	"time"

	"icecream/internal/core/domain/model/kernel"
)

// EventType names a domain event on the wire and in routing keys.
type EventType string

const (
	EventOrderCreated       EventType = "order.created"
	EventOrderStatusChanged EventType = "order.status_changed"
)

// Event records a fact about one order. Events are collected on the aggregate and
// published by the unit of work once the change is committed.
type Event struct {
	ID             kernel.UUID
	Type           EventType
	OrderID        ID
	CustomerEmail  string
	Status         Status
	PreviousStatus Status
	OccurredAt     time.Time
}

func newEvent(eventType EventType, o *Order, previous Status, at time.Time) Event {
	return Event{
		ID:             kernel.NewUUID(),
		Type:           eventType,
		OrderID:        o.id,
		CustomerEmail:  o.details.Customer.Email(),
		Status:         o.status,
		PreviousStatus: previous,
		OccurredAt:     at,
	}
}
