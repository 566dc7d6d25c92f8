package order

import (
	"fmt"
	"strings"

	"icecream/internal/pkg/errs"
)

// PaymentMethod names how the customer intends to pay. The service records it and
// processes nothing. The zero value NoPaymentMethod means "not specified".
type PaymentMethod int

const (
	NoPaymentMethod PaymentMethod = iota
	CreditCard
	DebitCard
	PayPal
	Stripe
	CashOnDelivery
	ApplePay
	GooglePay
)

type paymentMethodInfo struct {
	name        string
	displayName string
}

func getPaymentMethodInfo() map[PaymentMethod]paymentMethodInfo {
	//nolint:exhaustive // NoPaymentMethod has no wire name
	return map[PaymentMethod]paymentMethodInfo{
		CreditCard:     {"CREDIT_CARD", "Credit Card"},
		DebitCard:      {"DEBIT_CARD", "Debit Card"},
		PayPal:         {"PAYPAL", "PayPal"},
		Stripe:         {"STRIPE", "Stripe"},
		CashOnDelivery: {"CASH_ON_DELIVERY", "Cash on Delivery"},
		ApplePay:       {"APPLE_PAY", "Apple Pay"},
		GooglePay:      {"GOOGLE_PAY", "Google Pay"},
	}
}

// ParsePaymentMethod resolves a wire name such as "APPLE_PAY". An empty string yields
// NoPaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return NoPaymentMethod, nil
	}
	for method, info := range getPaymentMethodInfo() {
		if info.name == name {
			return method, nil
		}
	}
	return NoPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a supported payment method", s),
	)
}

// Validate accepts NoPaymentMethod and every named method.
func (m PaymentMethod) Validate() error {
	if m == NoPaymentMethod {
		return nil
	}
	if _, ok := getPaymentMethodInfo()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// IsSpecified reports whether a method was chosen.
func (m PaymentMethod) IsSpecified() bool {
	return m != NoPaymentMethod
}

// String returns the wire name, or "" for NoPaymentMethod.
func (m PaymentMethod) String() string {
	return getPaymentMethodInfo()[m].name
}

// DisplayName returns the human readable label, for example "Cash on Delivery".
func (m PaymentMethod) DisplayName() string {
	return getPaymentMethodInfo()[m].displayName
}
