package queries

import (
	"errors"
	"strings"

	"icecream/internal/pkg/errs"
	"icecream/internal/pkg/guard"
)

var ErrGetOrdersByCustomerEmailQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerEmailQuery must be created via NewGetOrdersByCustomerEmailQuery constructor",
)

// GetOrdersByCustomerEmailQuery finds a customer's orders by email, ignoring case.
type GetOrdersByCustomerEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

func NewGetOrdersByCustomerEmailQuery(email string) (GetOrdersByCustomerEmailQuery, error) {
	if strings.TrimSpace(email) == "" {
		return GetOrdersByCustomerEmailQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetOrdersByCustomerEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerEmailQueryIsNotConstructed)
}

func (q GetOrdersByCustomerEmailQuery) Email() string {
	return q.email
}
