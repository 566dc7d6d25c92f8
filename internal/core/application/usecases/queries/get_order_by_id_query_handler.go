package queries

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
	"icecream/internal/pkg/errs"
)

// GetOrderByIDQueryHandler reads one order. A missing order is reported through
// found == false, not as an error.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(42)
//	if err != nil {
//	    return err
//	}
//	o, found, err := handler.Handle(ctx, query)
//	switch {
//	case err != nil:
//	    return err
//	case !found:
//	    return echo.ErrNotFound
//	}
type GetOrderByIDQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderByIDQueryHandler(repo ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{repo: repo}
}

func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (*order.Order, bool, error) {
	if err := query.Validate(); err != nil {
		return nil, false, err
	}

	o, err := h.repo.Get(ctx, query.OrderID())
	if errs.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return o, true, nil
}
