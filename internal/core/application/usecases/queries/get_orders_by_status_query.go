package queries

import (
	"errors"
	"time"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists orders in one status, optionally only those created
// after a given instant.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Pending, nil)
//	if err != nil {
//	    return err
//	}
//	pending, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	status       order.Status
	createdAfter *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery validates the status. createdAfter may be nil.
func NewGetOrdersByStatusQuery(status order.Status, createdAfter *time.Time) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status:       status,
		createdAfter: createdAfter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// CreatedAfter returns the optional lower bound on creation time.
func (q GetOrdersByStatusQuery) CreatedAfter() *time.Time {
	return q.createdAfter
}
