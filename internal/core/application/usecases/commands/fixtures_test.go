package commands_test

import (
	"testing"
	"time"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

type zeroSource struct{}

func (zeroSource) Int64N(int64) int64 { return 0 }

func newItem(t *testing.T, flavor string, quantity int, price string) order.Item {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := order.NewItem(flavor, "Medium", quantity, unitPrice, "")
	require.NoError(t, err)
	return item
}

func newDetails(t *testing.T, items ...order.Item) order.Details {
	t.Helper()
	customer, err := order.NewCustomer("Alice Johnson", "alice@example.com", "+1-555-0101")
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("11.98")
	require.NoError(t, err)

	return order.Details{
		Customer:        customer,
		DeliveryAddress: "123 Main St",
		Items:           items,
		TotalAmount:     total,
	}
}

func storedOrder(t *testing.T, id order.ID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, newDetails(t, newItem(t, "Vanilla", 2, "5.99")), status, nil, now, nil)
	require.NoError(t, err)
	return o
}
