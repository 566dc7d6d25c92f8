// Package servers holds the transport types and echo bindings for api/openapi.yml.
// types.go and server.go are generated by oapi-codegen (see api/api.go); this file
// is maintained by hand and bound to the amount fields through x-go-type.
package servers

import (
	"github.com/shopspring/decimal"
)

// Amount is a currency amount rendered as a JSON number with two fractional digits.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON renders the amount unquoted, for example 11.98 or 5.00.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}
