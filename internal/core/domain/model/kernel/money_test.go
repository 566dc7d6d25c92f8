package kernel_test

import (
	"testing"

	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts amounts with up to two fractional digits", func(t *testing.T) {
		for _, s := range []string{"0", "1", "5.9", "5.99", "1000000.00"} {
			m, err := kernel.NewMoney(decimal.RequireFromString(s))

			require.NoError(t, err, s)
			require.NoError(t, m.Validate())
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("rejects sub-cent precision", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("1.999"))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "fractional digits")
	})

	t.Run("largest storable amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("99999999.99"))

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(kernel.MaxMoneyAmount))
	})

	t.Run("rejects amounts above the maximum", func(t *testing.T) {
		for _, s := range []string{"100000000", "99999999999.99"} {
			_, err := kernel.NewMoney(decimal.RequireFromString(s))

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, s)
			assert.True(t, errs.IsValidation(err))
		}
	})

	t.Run("trailing zeros beyond the scale are fine", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("2.5000"))

		require.NoError(t, err)
		assert.Equal(t, "2.50", m.String())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.5")

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("multiplication is exact", func(t *testing.T) {
		price, err := kernel.MoneyFromString("5.99")
		require.NoError(t, err)

		subtotal := price.Mul(2)

		assert.Equal(t, "11.98", subtotal.String())
		assert.True(t, subtotal.Amount().Equal(decimal.RequireFromString("11.98")))
		require.NoError(t, subtotal.Validate())
	})

	t.Run("addition is exact", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("0.10")
		b, _ := kernel.MoneyFromString("0.20")

		assert.Equal(t, "0.30", a.Add(b).String())
	})

	t.Run("equality ignores representation", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("5.9")
		b, _ := kernel.MoneyFromString("5.90")

		assert.True(t, a.Equal(b))
	})
}

func TestMoney_IsPositive(t *testing.T) {
	one, _ := kernel.MoneyFromString("0.01")

	assert.True(t, one.IsPositive())
	assert.False(t, kernel.ZeroMoney().IsPositive())
}

func TestMoney_Validate(t *testing.T) {
	require.NoError(t, kernel.ZeroMoney().Validate())
	require.ErrorIs(t, kernel.Money{}.Validate(), kernel.ErrMoneyIsNotConstructed)
}
