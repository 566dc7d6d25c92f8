package ports

import (
	"context"

	"icecream/internal/core/domain/model/order"
)

// StatisticsCache keeps the last computed order statistics for a short while.
//
// Every invalidation advances a generation counter. A value computed after reading
// generation g is stored only while the counter still equals g, so a computation
// that raced with a write never overwrites the invalidation.
type StatisticsCache interface {
	// Get returns the cached statistics; ok is false on a miss.
	Get(ctx context.Context) (stats order.Statistics, ok bool, err error)

	// Generation returns the current invalidation counter.
	Generation(ctx context.Context) (int64, error)

	// Put stores stats if the counter still equals generation. stored reports
	// whether the value was written.
	Put(ctx context.Context, generation int64, stats order.Statistics) (stored bool, err error)
}
