package queries

import (
	"errors"
	"strings"

	"icecream/internal/pkg/errs"
	"icecream/internal/pkg/guard"
)

var ErrGetOrdersByCustomerPhoneQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerPhoneQuery must be created via NewGetOrdersByCustomerPhoneQuery constructor",
)

// GetOrdersByCustomerPhoneQuery finds orders by the exact phone number given at checkout.
type GetOrdersByCustomerPhoneQuery struct {
	phone string

	guard guard.ConstructorGuard
}

func NewGetOrdersByCustomerPhoneQuery(phone string) (GetOrdersByCustomerPhoneQuery, error) {
	if strings.TrimSpace(phone) == "" {
		return GetOrdersByCustomerPhoneQuery{}, errs.NewValueIsRequiredError("phone")
	}

	return GetOrdersByCustomerPhoneQuery{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerPhoneQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerPhoneQueryIsNotConstructed)
}

func (q GetOrdersByCustomerPhoneQuery) Phone() string {
	return q.phone
}
