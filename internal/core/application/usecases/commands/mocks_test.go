package commands_test

import (
	"context"
	"time"

	"icecream/internal/core/application/usecases/commands"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AddAll(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return ordersArg0(args), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return ordersArg0(args), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerPhone(ctx context.Context, phone string) ([]*order.Order, error) {
	args := m.Called(ctx, phone)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindByStatusCreatedAfter(
	ctx context.Context, status order.Status, after time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, after)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerNameContaining(ctx context.Context, part string) ([]*order.Order, error) {
	args := m.Called(ctx, part)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindByDeliveryAddressContaining(
	ctx context.Context, part string,
) ([]*order.Order, error) {
	args := m.Called(ctx, part)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, since)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) FindStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	return listArg0(args), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func ordersArg0(args mock.Arguments) *order.Order {
	if o, ok := args.Get(0).(*order.Order); ok {
		return o
	}
	return nil
}

func listArg0(args mock.Arguments) []*order.Order {
	if list, ok := args.Get(0).([]*order.Order); ok {
		return list
	}
	return nil
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
