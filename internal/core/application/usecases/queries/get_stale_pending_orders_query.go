package queries

import (
	"errors"
	"math"
	"time"

	"icecream/internal/pkg/errs"
	"icecream/internal/pkg/guard"
)

var ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
	"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
)

// MaxOlderThanMinutes is the largest whole number of minutes a time.Duration holds.
const MaxOlderThanMinutes = math.MaxInt64 / int64(time.Minute)

// GetStalePendingOrdersQuery lists orders that have been waiting in Pending for
// longer than olderThan.
type GetStalePendingOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery requires a positive olderThan.
func NewGetStalePendingOrdersQuery(olderThan time.Duration) (GetStalePendingOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan", errors.New("must be positive"),
		)
	}

	return GetStalePendingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewGetStalePendingOrdersQueryFromMinutes accepts 1..MaxOlderThanMinutes minutes.
func NewGetStalePendingOrdersQueryFromMinutes(minutes int64) (GetStalePendingOrdersQuery, error) {
	if minutes < 1 || minutes > MaxOlderThanMinutes {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"olderThanMinutes", minutes, 1, MaxOlderThanMinutes,
		)
	}
	return NewGetStalePendingOrdersQuery(time.Duration(minutes) * time.Minute)
}

// Validate ensures the query was created through the constructor.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

func (q GetStalePendingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}
