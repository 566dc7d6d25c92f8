package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

type GetOrdersByCustomerPhoneQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrdersByCustomerPhoneQueryHandler(repo ports.OrderRepository) GetOrdersByCustomerPhoneQueryHandler {
	return GetOrdersByCustomerPhoneQueryHandler{repo: repo}
}

func (h GetOrdersByCustomerPhoneQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerPhoneQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindByCustomerPhone(ctx, query.Phone())
}
