package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/core/domain/model/order"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type orderSpec struct {
	name, email, phone, address string
	createdAt                   time.Time
}

func newOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()

	if s.name == "" {
		s.name = "Alice Johnson"
	}
	if s.email == "" {
		s.email = "alice@example.com"
	}
	if s.phone == "" {
		s.phone = "+1-555-0101"
	}
	if s.address == "" {
		s.address = "123 Main St"
	}
	if s.createdAt.IsZero() {
		s.createdAt = now
	}

	customer, err := order.NewCustomer(s.name, s.email, s.phone)
	require.NoError(t, err)
	price, err := kernel.MoneyFromString("4.50")
	require.NoError(t, err)
	item, err := order.NewItem("Pistachio", "Small", 2, price, "")
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("9.00")
	require.NoError(t, err)

	o, err := order.NewOrder(order.Details{
		Customer:        customer,
		DeliveryAddress: s.address,
		Items:           []order.Item{item},
		TotalAmount:     total,
		PaymentMethod:   order.CreditCard,
	}, s.createdAt, s.createdAt.Add(40*time.Minute))
	require.NoError(t, err)
	return o
}
