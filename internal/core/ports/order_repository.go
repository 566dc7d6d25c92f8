// Package ports defines the contracts between the order core and its adapters:
// persistence, transactions, event publication and caching.
package ports

import (
	"context"
	"time"

	"icecream/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Lists come back in identifier order unless stated otherwise. Text matching on
// email, customer name and address ignores case.
type OrderRepository interface {
	// Add inserts a new order and numbers it through order.AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddAll inserts several new orders in one round trip and numbers each of them.
	AddAll(ctx context.Context, aggregates []*order.Order) error

	// Update persists the mutable state (status, updatedAt) of an existing order.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetForUpdate is Get that also locks the order until the surrounding unit of
	// work ends, so concurrent status changes on one order apply one after another.
	GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error)

	GetAll(ctx context.Context) ([]*order.Order, error)

	// FindByCustomerEmail matches the whole address, ignoring case.
	FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error)

	FindByCustomerPhone(ctx context.Context, phone string) ([]*order.Order, error)

	FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// FindByStatusCreatedAfter returns orders in status created strictly after after.
	FindByStatusCreatedAfter(ctx context.Context, status order.Status, after time.Time) ([]*order.Order, error)

	// FindByCustomerNameContaining matches a substring of the customer name, ignoring case.
	FindByCustomerNameContaining(ctx context.Context, part string) ([]*order.Order, error)

	// FindByDeliveryAddressContaining matches a substring of the address, ignoring case.
	FindByDeliveryAddressContaining(ctx context.Context, part string) ([]*order.Order, error)

	// FindCreatedBetween returns orders created within [from, to].
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)

	// FindCreatedSince returns orders created at or after since, newest first.
	FindCreatedSince(ctx context.Context, since time.Time) ([]*order.Order, error)

	// FindStalePending returns Pending orders created before cutoff, oldest first.
	FindStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	CountByStatus(ctx context.Context, status order.Status) (int64, error)

	Count(ctx context.Context) (int64, error)
}
