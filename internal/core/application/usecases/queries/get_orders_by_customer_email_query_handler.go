package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

// GetOrdersByCustomerEmailQueryHandler returns the orders placed with an email
// address; "ALICE@Example.com" and "alice@example.com" are the same customer.
type GetOrdersByCustomerEmailQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrdersByCustomerEmailQueryHandler(repo ports.OrderRepository) GetOrdersByCustomerEmailQueryHandler {
	return GetOrdersByCustomerEmailQueryHandler{repo: repo}
}

func (h GetOrdersByCustomerEmailQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerEmailQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindByCustomerEmail(ctx, query.Email())
}
