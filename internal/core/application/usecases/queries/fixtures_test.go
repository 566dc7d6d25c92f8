package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"icecream/internal/adapters/out/memory"
	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/core/domain/model/order"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type seed struct {
	name, email, phone, address string
	status                      order.Status
	age                         time.Duration
}

// seedOrders stores one order per entry, in entry order, and returns them.
func seedOrders(t *testing.T, repo *memory.OrderRepository, seeds ...seed) []*order.Order {
	t.Helper()

	result := make([]*order.Order, 0, len(seeds))
	for _, s := range seeds {
		customer, err := order.NewCustomer(s.name, s.email, s.phone)
		require.NoError(t, err)
		price, err := kernel.MoneyFromString("3.99")
		require.NoError(t, err)
		item, err := order.NewItem("Strawberry", "Small", 1, price, "")
		require.NoError(t, err)

		status := s.status
		if status == order.Unknown {
			status = order.Pending
		}
		o, err := order.NewHistoricalOrder(order.Details{
			Customer:        customer,
			DeliveryAddress: s.address,
			Items:           []order.Item{item},
			TotalAmount:     price,
		}, status, now.Add(-s.age))
		require.NoError(t, err)
		require.NoError(t, repo.Add(t.Context(), o))
		result = append(result, o)
	}
	return result
}

func sampleSeeds() []seed {
	return []seed{
		{
			name: "Alice Johnson", email: "alice.johnson@email.com", phone: "+1-555-101-2345",
			address: "456 Oak Avenue, Sweet Town", status: order.Delivered, age: 2 * time.Hour,
		},
		{
			name: "Bob Smith", email: "bob.smith@email.com", phone: "+1-555-202-3456",
			address: "789 Pine Street, Flavor City", status: order.Pending, age: 90 * time.Minute,
		},
		{
			name: "Carol Williams", email: "carol.williams@email.com", phone: "+1-555-303-4567",
			address: "321 Elm Drive, Sundae City", status: order.Pending, age: 10 * time.Minute,
		},
		{
			name: "Alice Johnson", email: "ALICE.JOHNSON@email.com", phone: "+1-555-101-2345",
			address: "12 Oak Avenue, Sweet Town", status: order.Cancelled, age: 30 * time.Hour,
		},
	}
}

func ids(orders []*order.Order) []order.ID {
	result := make([]order.ID, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID())
	}
	return result
}

type MockStatisticsCache struct {
	mock.Mock
}

func (m *MockStatisticsCache) Get(ctx context.Context) (order.Statistics, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.Statistics), args.Bool(1), args.Error(2)
}

func (m *MockStatisticsCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsCache) Put(ctx context.Context, generation int64, stats order.Statistics) (bool, error) {
	args := m.Called(ctx, generation, stats)
	return args.Bool(0), args.Error(1)
}
