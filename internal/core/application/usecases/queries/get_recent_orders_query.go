package queries

import (
	"errors"

	"icecream/internal/pkg/guard"
)

var ErrGetRecentOrdersQueryIsNotConstructed = errors.New(
	"GetRecentOrdersQuery must be created via NewGetRecentOrdersQuery constructor",
)

// GetRecentOrdersQuery lists orders created within the last RecentOrdersWindow.
type GetRecentOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRecentOrdersQuery() GetRecentOrdersQuery {
	return GetRecentOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOrdersQueryIsNotConstructed)
}
