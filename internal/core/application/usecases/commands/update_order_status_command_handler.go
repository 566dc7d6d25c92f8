package commands

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/clock"
)

// UpdateOrderStatusCommandHandler applies status changes.
// Any status may follow any other; updatedAt is set to the clock's current time.
// The order row is locked for the duration of the change.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle returns the updated order, or an errs.ObjectNotFoundError when the
// identifier is unknown.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
