package eventbus_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icecream/internal/adapters/out/eventbus"
	"icecream/internal/core/domain/model/order"
)

func TestEncode_StatusChanged(t *testing.T) {
	o := newOrder(t, 12)
	require.NoError(t, o.ChangeStatus(order.OutForDelivery, now))
	event := o.DomainEvents()[1]

	data, err := eventbus.Encode(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "order.status_changed", decoded["type"])
	assert.InDelta(t, 12, decoded["orderId"], 0)
	assert.Equal(t, "alice@example.com", decoded["customerEmail"])
	assert.Equal(t, "OUT_FOR_DELIVERY", decoded["status"])
	assert.Equal(t, "PENDING", decoded["previousStatus"])
	assert.Equal(t, event.ID.String(), decoded["id"])
}

func TestEncode_CreatedOmitsPreviousStatus(t *testing.T) {
	event := newOrder(t, 1).DomainEvents()[0]

	data, err := eventbus.Encode(event)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "previousStatus")
}
