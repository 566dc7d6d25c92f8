package queries

import (
	"context"
	"time"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
	"icecream/internal/pkg/clock"
)

// RecentOrdersWindow is how far back "recent" reaches.
const RecentOrdersWindow = 24 * time.Hour

// GetRecentOrdersQueryHandler returns orders created at or after now minus
// RecentOrdersWindow, newest first.
type GetRecentOrdersQueryHandler struct {
	repo  ports.OrderRepository
	clock clock.Clock
}

func NewGetRecentOrdersQueryHandler(repo ports.OrderRepository, clk clock.Clock) GetRecentOrdersQueryHandler {
	return GetRecentOrdersQueryHandler{repo: repo, clock: clk}
}

func (h GetRecentOrdersQueryHandler) Handle(ctx context.Context, query GetRecentOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindCreatedSince(ctx, h.clock.Now().Add(-RecentOrdersWindow))
}
