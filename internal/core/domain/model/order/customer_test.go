package order_test

import (
	"strings"
	"testing"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		c, err := order.NewCustomer("Alice Johnson", "alice@example.com", "+1-555-0101")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Alice Johnson", c.Name())
		assert.Equal(t, "alice@example.com", c.Email())
		assert.Equal(t, "+1-555-0101", c.Phone())
	})

	tests := []struct {
		name     string
		customer [3]string
		contains string
	}{
		{"blank name", [3]string{"", "alice@example.com", "555"}, "customerName"},
		{"blank email", [3]string{"Alice", " ", "555"}, "customerEmail"},
		{"malformed email", [3]string{"Alice", "alice.example.com", "555"}, "customerEmail"},
		{"email with display name", [3]string{"Alice", "Alice <alice@example.com>", "555"}, "customerEmail"},
		{"blank phone", [3]string{"Alice", "alice@example.com", ""}, "customerPhone"},
		{"name too long", [3]string{strings.Repeat("A", 300), "alice@example.com", "555"}, "customerName"},
		{"email too long", [3]string{"Alice", strings.Repeat("a", 250) + "@example.com", "555"}, "customerEmail"},
		{"phone too long", [3]string{"Alice", "alice@example.com", strings.Repeat("5", 51)}, "customerPhone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewCustomer(tt.customer[0], tt.customer[1], tt.customer[2])

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	t.Run("name at its length limit", func(t *testing.T) {
		name := strings.Repeat("A", order.MaxCustomerNameLength)

		c, err := order.NewCustomer(name, "alice@example.com", "555")

		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	})

	t.Run("all problems are reported together", func(t *testing.T) {
		_, err := order.NewCustomer("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "customerEmail")
		assert.Contains(t, err.Error(), "customerPhone")
	})
}

func TestCustomer_Validate(t *testing.T) {
	require.ErrorIs(t, order.Customer{}.Validate(), order.ErrCustomerIsNotConstructed)
}
