package commands_test

import (
	"errors"
	"testing"
	"time"

	"icecream/internal/core/application/usecases/commands"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("seeds an empty store", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Count", ctx).Return(int64(0), nil).Once()

		var seeded []*order.Order
		repo.On("AddAll", ctx, mock.AnythingOfType("[]*order.Order")).
			Run(func(args mock.Arguments) { seeded = args.Get(1).([]*order.Order) }).
			Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewSeedSampleOrdersCommandHandler(factory, clock.Fixed(now))
		n, err := h.Handle(ctx, commands.NewSeedSampleOrdersCommand())

		require.NoError(t, err)
		assert.Equal(t, 4, n)
		require.Len(t, seeded, 4)

		alice := seeded[0]
		assert.Equal(t, "Alice Johnson", alice.Customer().Name())
		assert.Equal(t, order.Delivered, alice.Status())
		assert.Equal(t, now.Add(-2*time.Hour), alice.CreatedAt())
		assert.Equal(t, "16.97", alice.TotalAmount().String())
		assert.Len(t, alice.Items(), 2)
		assert.Nil(t, alice.UpdatedAt())

		statuses := []order.Status{seeded[1].Status(), seeded[2].Status(), seeded[3].Status()}
		assert.Equal(t, []order.Status{order.Preparing, order.Pending, order.OutForDelivery}, statuses)
		uow.AssertExpectations(t)
	})

	t.Run("leaves a populated store alone", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("Count", ctx).Return(int64(3), nil)

		h := commands.NewSeedSampleOrdersCommandHandler(factory, clock.Fixed(now))
		n, err := h.Handle(ctx, commands.NewSeedSampleOrdersCommand())

		require.NoError(t, err)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "AddAll", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("count error is returned", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("Count", ctx).Return(int64(0), errors.New("count error"))

		h := commands.NewSeedSampleOrdersCommandHandler(factory, clock.Fixed(now))
		_, err := h.Handle(ctx, commands.NewSeedSampleOrdersCommand())

		require.EqualError(t, err, "count error")
	})
}
