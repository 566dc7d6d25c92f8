package queries

import (
	"errors"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery looks up a single order.
type GetOrderByIDQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery rejects non-positive identifiers.
func NewGetOrderByIDQuery(orderID order.ID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

func (q GetOrderByIDQuery) OrderID() order.ID {
	return q.orderID
}
