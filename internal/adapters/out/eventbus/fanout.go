package eventbus

import (
	"context"
	"errors"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

// Fanout hands every batch to each publisher in turn. A failing publisher does not
// stop the others; all failures come back joined.
type Fanout []ports.EventPublisher

func NewFanout(publishers ...ports.EventPublisher) Fanout {
	return publishers
}

func (f Fanout) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	var problems []error
	for _, p := range f {
		if err := p.Publish(ctx, events...); err != nil {
			problems = append(problems, err)
		}
	}
	return errors.Join(problems...)
}
