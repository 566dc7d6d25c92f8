package eventbus

import (
	"context"

	"github.com/sirupsen/logrus"

	"icecream/internal/core/domain/model/order"
)

// LogPublisher writes one structured log line per event. It is always part of the
// fan-out so that order activity is visible even without a broker.
type LogPublisher struct {
	logger logrus.FieldLogger
}

func NewLogPublisher(logger logrus.FieldLogger) LogPublisher {
	return LogPublisher{logger: logger}
}

func (p LogPublisher) Publish(_ context.Context, events ...order.Event) error {
	for _, e := range events {
		entry := p.logger.WithFields(logrus.Fields{
			"event_id": e.ID.String(),
			"event":    string(e.Type),
			"order_id": e.OrderID.String(),
			"status":   e.Status.String(),
		})
		if e.Type == order.EventOrderStatusChanged {
			entry = entry.WithField("previous_status", e.PreviousStatus.String())
		}
		entry.Info("order event")
	}
	return nil
}
