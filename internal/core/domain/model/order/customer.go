package order

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"icecream/internal/pkg/errs"
	"icecream/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the contact data captured with an order.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string
	guard guard.ConstructorGuard
}

// NewCustomer validates that name and phone are non-blank and that email is a bare
// address such as "alice@example.com" (display-name forms are rejected). Each field
// is bounded by its Max*Length constant.
func NewCustomer(name, email, phone string) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

func (c Customer) Phone() string {
	return c.phone
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if err := checkLength("customerName", name, MaxCustomerNameLength); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	if err := checkLength("customerEmail", email, MaxCustomerEmailLength); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerEmail", err)
	}
	if addr.Address != email || addr.Name != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"customerEmail",
			fmt.Errorf("%q is not a plain email address", email),
		)
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if err := checkLength("customerPhone", phone, MaxCustomerPhoneLength); err != nil {
		return err
	}
	c.phone = phone
	return nil
}
