package queries

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

const statisticsFlightKey = "order-statistics"

// GetOrderStatisticsQueryHandler counts all orders and the orders in Pending,
// Confirmed, Delivered and Cancelled. Each count is an independent read, so the
// numbers may be slightly out of step with each other under concurrent writes.
//
// When a cache is configured the handler serves from it and refills it on a miss.
// Cache failures are logged and otherwise ignored. Concurrent misses share a single
// computation, which is detached from the caller's cancellation: a caller that
// gives up gets its context error while the others still receive the result.
// The refill is tied to the cache generation read before counting, so counts that
// raced with a committed write are returned but not cached.
type GetOrderStatisticsQueryHandler struct {
	repo   ports.OrderRepository
	cache  ports.StatisticsCache
	flight *singleflight.Group
	logger logrus.FieldLogger
}

// NewGetOrderStatisticsQueryHandler builds a handler. cache may be nil.
func NewGetOrderStatisticsQueryHandler(
	repo ports.OrderRepository,
	cache ports.StatisticsCache,
	logger logrus.FieldLogger,
) GetOrderStatisticsQueryHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return GetOrderStatisticsQueryHandler{
		repo:   repo,
		cache:  cache,
		flight: &singleflight.Group{},
		logger: logger,
	}
}

func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (order.Statistics, error) {
	if err := query.Validate(); err != nil {
		return order.Statistics{}, err
	}

	if h.cache != nil {
		stats, ok, err := h.cache.Get(ctx)
		if err != nil {
			h.logger.WithError(err).Warn("statistics cache read failed")
		}
		if ok {
			return stats, nil
		}
	}

	flight := h.flight.DoChan(statisticsFlightKey, func() (any, error) {
		return h.load(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return order.Statistics{}, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return order.Statistics{}, res.Err
		}
		stats, _ := res.Val.(order.Statistics)
		return stats, nil
	}
}

func (h GetOrderStatisticsQueryHandler) load(ctx context.Context) (order.Statistics, error) {
	if h.cache == nil {
		return h.compute(ctx)
	}

	generation, err := h.cache.Generation(ctx)
	if err != nil {
		h.logger.WithError(err).Warn("statistics cache read failed")
		return h.compute(ctx)
	}

	stats, err := h.compute(ctx)
	if err != nil {
		return order.Statistics{}, err
	}

	stored, err := h.cache.Put(ctx, generation, stats)
	switch {
	case err != nil:
		h.logger.WithError(err).Warn("statistics cache write failed")
	case !stored:
		h.logger.WithField("generation", generation).Debug("statistics changed while counting, not cached")
	}

	return stats, nil
}

func (h GetOrderStatisticsQueryHandler) compute(ctx context.Context) (order.Statistics, error) {
	total, err := h.repo.Count(ctx)
	if err != nil {
		return order.Statistics{}, fmt.Errorf("count orders: %w", err)
	}

	stats := order.Statistics{TotalOrders: total}
	for status, dst := range map[order.Status]*int64{
		order.Pending:   &stats.PendingOrders,
		order.Confirmed: &stats.ConfirmedOrders,
		order.Delivered: &stats.DeliveredOrders,
		order.Cancelled: &stats.CancelledOrders,
	} {
		n, err := h.repo.CountByStatus(ctx, status)
		if err != nil {
			return order.Statistics{}, fmt.Errorf("count %s orders: %w", status, err)
		}
		*dst = n
	}

	return stats, nil
}
