package commands

import (
	"errors"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer placing a new ice cream order.
// Any status the caller may have supplied is deliberately absent: new orders always
// start Pending.
//
// Example:
//
//	cmd := NewCreateOrderCommand(order.Details{
//	    Customer:        customer,
//	    DeliveryAddress: "456 Oak Avenue",
//	    Items:           items,
//	    TotalAmount:     total,
//	})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created, ETA %s", created.ID(), created.EstimatedDeliveryTime())
type CreateOrderCommand struct {
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand wraps the order details. Field rules are enforced by the
// handler and the Order aggregate.
func NewCreateOrderCommand(details order.Details) CreateOrderCommand {
	return CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the customer-supplied order data.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}
