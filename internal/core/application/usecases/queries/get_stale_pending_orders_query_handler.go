package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
	"icecream/internal/pkg/clock"
)

// GetStalePendingOrdersQueryHandler returns Pending orders created before
// now minus OlderThan, oldest first.
type GetStalePendingOrdersQueryHandler struct {
	repo  ports.OrderRepository
	clock clock.Clock
}

func NewGetStalePendingOrdersQueryHandler(repo ports.OrderRepository, clk clock.Clock) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{repo: repo, clock: clk}
}

func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindStalePending(ctx, h.clock.Now().Add(-query.OlderThan()))
}
