package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

type SearchOrdersByDeliveryAddressQueryHandler struct {
	repo ports.OrderRepository
}

func NewSearchOrdersByDeliveryAddressQueryHandler(
	repo ports.OrderRepository,
) SearchOrdersByDeliveryAddressQueryHandler {
	return SearchOrdersByDeliveryAddressQueryHandler{repo: repo}
}

func (h SearchOrdersByDeliveryAddressQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersByDeliveryAddressQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindByDeliveryAddressContaining(ctx, query.Address())
}
