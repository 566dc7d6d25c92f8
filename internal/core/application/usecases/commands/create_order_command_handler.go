package commands

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/domain/services"
	"icecream/internal/pkg/clock"
)

// CreateOrderCommandHandler places new orders.
//
// Business rules applied, in order:
//   - the order has at least one item
//   - total quantity does not exceed OrderPolicy.MaxOrderQuantity
//   - all field rules of the Order aggregate hold
//
// The created order is Pending, stamped with the clock's current time and given a
// delivery estimate between 30 and 60 minutes later. It is written to the store once.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     OrderPolicy
	estimator  services.DeliveryEstimator
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Non-positive policy values fall back to the defaults.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy OrderPolicy,
	estimator services.DeliveryEstimator,
	clk clock.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy.withDefaults(),
		estimator:  estimator,
		clock:      clk,
	}
}

// Policy returns the rules the handler enforces.
func (h *CreateOrderCommandHandler) Policy() OrderPolicy {
	return h.policy
}

// Handle validates and stores the order and returns it with its assigned identifier.
// Validation failures are errs value errors; nothing is written in that case.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	details := cmd.Details()
	if err := h.policy.CheckItems(details.Items); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	created, err := order.NewOrder(details, now, h.estimator.Estimate(now))
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
