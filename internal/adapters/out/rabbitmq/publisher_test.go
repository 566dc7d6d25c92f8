package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"icecream/internal/adapters/out/rabbitmq"
	"icecream/internal/core/domain/model/kernel"
	"icecream/internal/core/domain/model/order"
)

const exchange = "ice-cream.orders"

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(
	name, kind string,
	durable, autoDelete, internal, noWait bool,
	args amqp.Table,
) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func createdEvent() order.Event {
	return order.Event{
		ID:            kernel.NewUUID(),
		Type:          order.EventOrderCreated,
		OrderID:       3,
		CustomerEmail: "carol.williams@email.com",
		Status:        order.Pending,
		OccurredAt:    time.Date(2025, 6, 1, 11, 50, 0, 0, time.UTC),
	}
}

func newPublisher(t *testing.T, ch *MockChannel) *rabbitmq.Publisher {
	t.Helper()

	logger, _ := test.NewNullLogger()
	ch.On("ExchangeDeclare", exchange, "topic", true, false, false, false, amqp.Table(nil)).Return(nil).Once()
	p, err := rabbitmq.NewPublisherWithChannel(ch, exchange, logger)
	require.NoError(t, err)
	return p
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	ch := &MockChannel{}
	p := newPublisher(t, ch)
	event := createdEvent()

	ch.On("PublishWithContext", ctx, exchange, "order.created", false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var decoded map[string]any
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.MessageId == event.ID.String() &&
				decoded["status"] == "PENDING"
		}),
	).Return(nil).Once()

	require.NoError(t, p.Publish(ctx, event))
	ch.AssertExpectations(t)
}

func TestPublisher_Publish_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	ch := &MockChannel{}
	p := newPublisher(t, ch)
	ch.On("PublishWithContext", ctx, exchange, "order.created", false, false, mock.Anything).
		Return(amqp.ErrClosed).Once()

	err := p.Publish(ctx, createdEvent(), createdEvent())

	require.ErrorIs(t, err, amqp.ErrClosed)
	ch.AssertNumberOfCalls(t, "PublishWithContext", 1)
}

func TestNewPublisherWithChannel_DeclareFails(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ch := &MockChannel{}
	ch.On("ExchangeDeclare", exchange, "topic", true, false, false, false, amqp.Table(nil)).
		Return(errors.New("access refused")).Once()

	_, err := rabbitmq.NewPublisherWithChannel(ch, exchange, logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not declare exchange")
}

func TestPublisher_Close(t *testing.T) {
	ch := &MockChannel{}
	p := newPublisher(t, ch)
	ch.On("Close").Return(nil).Once()

	require.NoError(t, p.Close())
	ch.AssertExpectations(t)
}
