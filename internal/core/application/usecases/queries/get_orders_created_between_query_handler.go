package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

type GetOrdersCreatedBetweenQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrdersCreatedBetweenQueryHandler(repo ports.OrderRepository) GetOrdersCreatedBetweenQueryHandler {
	return GetOrdersCreatedBetweenQueryHandler{repo: repo}
}

func (h GetOrdersCreatedBetweenQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersCreatedBetweenQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindCreatedBetween(ctx, query.From(), query.To())
}
