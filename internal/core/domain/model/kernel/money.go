package kernel

import (
	"fmt"

	"icecream/internal/pkg/errs"
	"icecream/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits a currency amount may carry.
const MoneyScale = 2

// MaxMoneyAmount is the largest amount a constructor accepts: ten digits, two of
// them fractional.
var MaxMoneyAmount = decimal.New(9999999999, -MoneyScale)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is a non-negative currency amount with at most two fractional digits.
// Arithmetic is exact: 5.99 × 2 is 11.98, never 11.979999.
//
// Example:
//
//	price, err := kernel.MoneyFromString("5.99")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(price.Mul(2)) // 11.98
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates amount and wraps it.
// Negative amounts, amounts above MaxMoneyAmount and amounts with more than
// MoneyScale fractional digits are rejected. Mul and Add results are not capped.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate reports whether m was built by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Mul returns m multiplied by a whole quantity.
func (m Money) Mul(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Equal compares amounts numerically, so 5.9 equals 5.90.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	if amount.GreaterThan(MaxMoneyAmount) {
		return errs.NewValueIsOutOfRangeError("amount", amount, decimal.Zero, MaxMoneyAmount)
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d fractional digits", amount, MoneyScale),
		)
	}
	m.amount = amount
	return nil
}
