package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"icecream/internal/adapters/out/memory"
	"icecream/internal/core/application/usecases/queries"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

func TestGetOrderStatisticsQueryHandler_CountsWithoutCache(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	seedOrders(t, repo, sampleSeeds()...)

	stats, err := queries.NewGetOrderStatisticsQueryHandler(repo, nil, nil).
		Handle(t.Context(), queries.NewGetOrderStatisticsQuery())

	require.NoError(t, err)
	assert.Equal(t, order.Statistics{
		TotalOrders:     4,
		PendingOrders:   2,
		ConfirmedOrders: 0,
		DeliveredOrders: 1,
		CancelledOrders: 1,
	}, stats)
}

func TestGetOrderStatisticsQueryHandler_EmptyStore(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())

	stats, err := queries.NewGetOrderStatisticsQueryHandler(repo, nil, nil).
		Handle(t.Context(), queries.NewGetOrderStatisticsQuery())

	require.NoError(t, err)
	assert.Equal(t, order.Statistics{}, stats)
}

func TestGetOrderStatisticsQueryHandler_CacheHit(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	seedOrders(t, repo, sampleSeeds()...)
	cached := order.Statistics{TotalOrders: 99}

	cache := &MockStatisticsCache{}
	cache.On("Get", ctx).Return(cached, true, nil).Once()

	stats, err := queries.NewGetOrderStatisticsQueryHandler(repo, cache, nil).
		Handle(ctx, queries.NewGetOrderStatisticsQuery())

	require.NoError(t, err)
	assert.Equal(t, cached, stats)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrderStatisticsQueryHandler_CacheMissStoresResult(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	seedOrders(t, repo, sampleSeeds()[:2]...)
	expected := order.Statistics{TotalOrders: 2, PendingOrders: 1, DeliveredOrders: 1}

	cache := &MockStatisticsCache{}
	mock.InOrder(
		cache.On("Get", ctx).Return(order.Statistics{}, false, nil).Once(),
		cache.On("Generation", mock.Anything).Return(int64(5), nil).Once(),
		cache.On("Put", mock.Anything, int64(5), expected).Return(true, nil).Once(),
	)

	stats, err := queries.NewGetOrderStatisticsQueryHandler(repo, cache, nil).
		Handle(ctx, queries.NewGetOrderStatisticsQuery())

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
	cache.AssertExpectations(t)
}

func TestGetOrderStatisticsQueryHandler_CacheFailuresAreNotFatal(t *testing.T) {
	ctx := t.Context()
	logger, hook := test.NewNullLogger()
	repo := memory.NewOrderRepository(memory.NewStore())
	seedOrders(t, repo, sampleSeeds()[:1]...)

	cache := &MockStatisticsCache{}
	cache.On("Get", ctx).Return(order.Statistics{}, false, errors.New("redis down")).Once()
	cache.On("Generation", mock.Anything).Return(int64(0), nil).Once()
	cache.On("Put", mock.Anything, int64(0), mock.Anything).Return(false, errors.New("redis down")).Once()

	stats, err := queries.NewGetOrderStatisticsQueryHandler(repo, cache, logger).
		Handle(ctx, queries.NewGetOrderStatisticsQuery())

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Len(t, hook.AllEntries(), 2)
}

func TestGetOrderStatisticsQueryHandler_GenerationFailureSkipsRefill(t *testing.T) {
	ctx := t.Context()
	logger, hook := test.NewNullLogger()
	repo := memory.NewOrderRepository(memory.NewStore())
	seedOrders(t, repo, sampleSeeds()[:1]...)

	cache := &MockStatisticsCache{}
	cache.On("Get", ctx).Return(order.Statistics{}, false, nil).Once()
	cache.On("Generation", mock.Anything).Return(int64(0), errors.New("redis down")).Once()

	stats, err := queries.NewGetOrderStatisticsQueryHandler(repo, cache, logger).
		Handle(ctx, queries.NewGetOrderStatisticsQuery())

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Len(t, hook.AllEntries(), 1)
	cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrderStatisticsQueryHandler_StaleCountsAreNotCached(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	seedOrders(t, repo, sampleSeeds()[:1]...)

	cache := &MockStatisticsCache{}
	cache.On("Get", ctx).Return(order.Statistics{}, false, nil).Once()
	cache.On("Generation", mock.Anything).Return(int64(2), nil).Once()
	cache.On("Put", mock.Anything, int64(2), mock.Anything).Return(false, nil).Once()

	stats, err := queries.NewGetOrderStatisticsQueryHandler(repo, cache, nil).
		Handle(ctx, queries.NewGetOrderStatisticsQuery())

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	cache.AssertExpectations(t)
}

// blockingCountRepository holds Count until release is closed or ctx ends.
type blockingCountRepository struct {
	ports.OrderRepository

	entered     chan struct{}
	enteredOnce sync.Once
	release     chan struct{}
}

func (r *blockingCountRepository) Count(ctx context.Context) (int64, error) {
	r.enteredOnce.Do(func() { close(r.entered) })
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-r.release:
		return r.OrderRepository.Count(ctx)
	}
}

func TestGetOrderStatisticsQueryHandler_CancelledCallerDoesNotFailOthers(t *testing.T) {
	inner := memory.NewOrderRepository(memory.NewStore())
	seedOrders(t, inner, sampleSeeds()...)
	repo := &blockingCountRepository{
		OrderRepository: inner,
		entered:         make(chan struct{}),
		release:         make(chan struct{}),
	}
	handler := queries.NewGetOrderStatisticsQueryHandler(repo, nil, nil)

	firstCtx, cancel := context.WithCancel(t.Context())
	first := make(chan error, 1)
	go func() {
		_, err := handler.Handle(firstCtx, queries.NewGetOrderStatisticsQuery())
		first <- err
	}()
	<-repo.entered

	type result struct {
		stats order.Statistics
		err   error
	}
	second := make(chan result, 1)
	go func() {
		stats, err := handler.Handle(t.Context(), queries.NewGetOrderStatisticsQuery())
		second <- result{stats, err}
	}()

	cancel()
	require.ErrorIs(t, <-first, context.Canceled)

	close(repo.release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, int64(4), got.stats.TotalOrders)
	assert.Equal(t, int64(2), got.stats.PendingOrders)
}
