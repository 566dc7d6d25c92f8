package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

type GetOrdersByStatusQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrdersByStatusQueryHandler(repo ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{repo: repo}
}

func (h GetOrdersByStatusQueryHandler) Handle(ctx context.Context, query GetOrdersByStatusQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if after := query.CreatedAfter(); after != nil {
		return h.repo.FindByStatusCreatedAfter(ctx, query.Status(), *after)
	}
	return h.repo.FindByStatus(ctx, query.Status())
}
