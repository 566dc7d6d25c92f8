package queries

import (
	"errors"

	"icecream/internal/pkg/guard"
)

var ErrSearchOrdersByCustomerNameQueryIsNotConstructed = errors.New(
	"SearchOrdersByCustomerNameQuery must be created via NewSearchOrdersByCustomerNameQuery constructor",
)

// SearchOrdersByCustomerNameQuery finds orders whose customer name contains a
// fragment, ignoring case: "ali" finds "Alice Johnson". An empty fragment matches
// every order.
type SearchOrdersByCustomerNameQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewSearchOrdersByCustomerNameQuery(name string) SearchOrdersByCustomerNameQuery {
	return SearchOrdersByCustomerNameQuery{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersByCustomerNameQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersByCustomerNameQueryIsNotConstructed)
}

func (q SearchOrdersByCustomerNameQuery) Name() string {
	return q.name
}
