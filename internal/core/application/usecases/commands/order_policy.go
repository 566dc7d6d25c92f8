package commands

import (
	"fmt"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/errs"
)

const (
	DefaultMaxOrderQuantity = 50
	DefaultDeliveryRadiusKm = 25
)

// OrderPolicy carries the shop rules applied when an order is placed.
type OrderPolicy struct {
	// MaxOrderQuantity caps the sum of item quantities in one order.
	MaxOrderQuantity int

	// DeliveryRadiusKm is informational; no rule reads it.
	DeliveryRadiusKm int
}

// DefaultOrderPolicy returns the stock shop rules.
func DefaultOrderPolicy() OrderPolicy {
	return OrderPolicy{
		MaxOrderQuantity: DefaultMaxOrderQuantity,
		DeliveryRadiusKm: DefaultDeliveryRadiusKm,
	}
}

// withDefaults replaces non-positive settings with their defaults.
func (p OrderPolicy) withDefaults() OrderPolicy {
	if p.MaxOrderQuantity <= 0 {
		p.MaxOrderQuantity = DefaultMaxOrderQuantity
	}
	if p.DeliveryRadiusKm <= 0 {
		p.DeliveryRadiusKm = DefaultDeliveryRadiusKm
	}
	return p
}

// CheckItems rejects an empty order and one whose total quantity exceeds
// MaxOrderQuantity.
func (p OrderPolicy) CheckItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", order.ErrOrderHasNoItems)
	}

	if total := order.TotalQuantity(items); total > p.MaxOrderQuantity {
		return errs.NewValueIsInvalidErrorWithCause(
			"items",
			fmt.Errorf("total quantity %d exceeds maximum allowed: %d", total, p.MaxOrderQuantity),
		)
	}

	return nil
}
