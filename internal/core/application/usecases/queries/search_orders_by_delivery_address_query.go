package queries

import (
	"errors"

	"icecream/internal/pkg/guard"
)

var ErrSearchOrdersByDeliveryAddressQueryIsNotConstructed = errors.New(
	"SearchOrdersByDeliveryAddressQuery must be created via NewSearchOrdersByDeliveryAddressQuery constructor",
)

// SearchOrdersByDeliveryAddressQuery finds orders whose delivery address contains a
// fragment, ignoring case, for example every order going to "Oak Avenue".
type SearchOrdersByDeliveryAddressQuery struct {
	address string

	guard guard.ConstructorGuard
}

func NewSearchOrdersByDeliveryAddressQuery(address string) SearchOrdersByDeliveryAddressQuery {
	return SearchOrdersByDeliveryAddressQuery{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersByDeliveryAddressQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersByDeliveryAddressQueryIsNotConstructed)
}

func (q SearchOrdersByDeliveryAddressQuery) Address() string {
	return q.address
}
