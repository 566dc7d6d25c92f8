package eventbus

import (
	"encoding/json"
	"time"

	"icecream/internal/core/domain/model/order"
)

// Message is the JSON form of an order event shared by the broker publishers.
type Message struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	OrderID        int64     `json:"orderId"`
	CustomerEmail  string    `json:"customerEmail"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func NewMessage(e order.Event) Message {
	m := Message{
		ID:            e.ID.String(),
		Type:          string(e.Type),
		OrderID:       int64(e.OrderID),
		CustomerEmail: e.CustomerEmail,
		Status:        e.Status.String(),
		OccurredAt:    e.OccurredAt,
	}
	if e.Type == order.EventOrderStatusChanged {
		m.PreviousStatus = e.PreviousStatus.String()
	}
	return m
}

// Encode marshals the event as JSON.
func Encode(e order.Event) ([]byte, error) {
	return json.Marshal(NewMessage(e))
}
