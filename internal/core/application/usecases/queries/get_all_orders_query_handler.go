package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

// GetAllOrdersQueryHandler returns all orders in store order.
type GetAllOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetAllOrdersQueryHandler(repo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{repo: repo}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.GetAll(ctx)
}
