package ports

import (
	"context"

	"icecream/internal/core/domain/model/order"
)

// EventPublisher delivers committed order events to the outside world.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
