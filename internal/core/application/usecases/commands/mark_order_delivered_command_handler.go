package commands

import (
	"context"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/clock"
)

// MarkOrderDeliveredCommandHandler is a status change to Delivered.
type MarkOrderDeliveredCommandHandler struct {
	updateStatus UpdateOrderStatusCommandHandler
}

func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		updateStatus: NewUpdateOrderStatusCommandHandler(uowFactory, clk),
	}
}

func (h *MarkOrderDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOrderDeliveredCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	statusCmd, err := NewUpdateOrderStatusCommand(cmd.OrderID(), order.Delivered)
	if err != nil {
		return nil, err
	}

	return h.updateStatus.Handle(ctx, statusCmd)
}
