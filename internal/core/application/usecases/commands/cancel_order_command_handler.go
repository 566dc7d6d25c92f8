package commands

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/clock"
)

// CancelOrderCommandHandler is a status change to Cancelled.
type CancelOrderCommandHandler struct {
	updateStatus UpdateOrderStatusCommandHandler
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		updateStatus: NewUpdateOrderStatusCommandHandler(uowFactory, clk),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	statusCmd, err := NewUpdateOrderStatusCommand(cmd.OrderID(), order.Cancelled)
	if err != nil {
		return nil, err
	}

	return h.updateStatus.Handle(ctx, statusCmd)
}
