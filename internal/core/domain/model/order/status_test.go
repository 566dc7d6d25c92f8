package order_test

import (
	"testing"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_StringAndDescription(t *testing.T) {
	tests := []struct {
		status      order.Status
		name        string
		description string
	}{
		{order.Pending, "PENDING", "Order received, processing"},
		{order.Confirmed, "CONFIRMED", "Order confirmed, preparing"},
		{order.Preparing, "PREPARING", "Ice cream being prepared"},
		{order.Ready, "READY", "Order ready for pickup/delivery"},
		{order.OutForDelivery, "OUT_FOR_DELIVERY", "Order out for delivery"},
		{order.Delivered, "DELIVERED", "Order delivered successfully"},
		{order.Cancelled, "CANCELLED", "Order cancelled"},
		{order.Refunded, "REFUNDED", "Order refunded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.description, tt.status.Description())
			require.NoError(t, tt.status.Validate())
		})
	}
	assert.Len(t, order.AllStatuses(), len(tests))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("unknown is invalid", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Empty(t, order.Unknown.Description())
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("parses every wire name", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("ignores case and whitespace", func(t *testing.T) {
		parsed, err := order.ParseStatus("  out_for_delivery ")

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, parsed)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("SHIPPED")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "SHIPPED")
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.True(t, order.Refunded.IsFinal())
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.OutForDelivery.IsFinal())
}
