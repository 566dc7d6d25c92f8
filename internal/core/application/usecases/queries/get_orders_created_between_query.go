package queries

import (
	"errors"
	"fmt"
	"time"

	"icecream/internal/pkg/errs"
	"icecream/internal/pkg/guard"
)

var ErrGetOrdersCreatedBetweenQueryIsNotConstructed = errors.New(
	"GetOrdersCreatedBetweenQuery must be created via NewGetOrdersCreatedBetweenQuery constructor",
)

// GetOrdersCreatedBetweenQuery lists orders created within an inclusive time range.
type GetOrdersCreatedBetweenQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersCreatedBetweenQuery requires both bounds and from <= to.
func NewGetOrdersCreatedBetweenQuery(from, to time.Time) (GetOrdersCreatedBetweenQuery, error) {
	var problems []error
	if from.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("from"))
	}
	if to.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("to"))
	}
	if len(problems) == 0 && from.After(to) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"from",
			fmt.Errorf("%s is after %s", from.Format(time.RFC3339), to.Format(time.RFC3339)),
		))
	}
	if err := errors.Join(problems...); err != nil {
		return GetOrdersCreatedBetweenQuery{}, err
	}

	return GetOrdersCreatedBetweenQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersCreatedBetweenQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersCreatedBetweenQueryIsNotConstructed)
}

func (q GetOrdersCreatedBetweenQuery) From() time.Time {
	return q.from
}

func (q GetOrdersCreatedBetweenQuery) To() time.Time {
	return q.to
}
