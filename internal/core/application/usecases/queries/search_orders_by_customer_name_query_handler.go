package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

type SearchOrdersByCustomerNameQueryHandler struct {
	repo ports.OrderRepository
}

func NewSearchOrdersByCustomerNameQueryHandler(repo ports.OrderRepository) SearchOrdersByCustomerNameQueryHandler {
	return SearchOrdersByCustomerNameQueryHandler{repo: repo}
}

func (h SearchOrdersByCustomerNameQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersByCustomerNameQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindByCustomerNameContaining(ctx, query.Name())
}
