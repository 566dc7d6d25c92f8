// Package rabbitmq publishes order events to a durable topic exchange. The routing
// key is the event type ("order.created", "order.status_changed") so consumers can
// bind to all order events with "order.#" or to one kind only.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"icecream/internal/adapters/out/eventbus"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

const ExchangeType = "topic"

var _ ports.EventPublisher = (*Publisher)(nil)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends order events to one exchange. An amqp channel is not safe for
// concurrent publishing, so Publish calls are serialized.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
	logger   logrus.FieldLogger
}

// NewPublisher dials url, opens a channel and declares exchange.
func NewPublisher(url, exchange string, logger logrus.FieldLogger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("could not open channel: %w", err)
	}

	p, err := NewPublisherWithChannel(ch, exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisherWithChannel declares exchange on an already open channel.
func NewPublisherWithChannel(ch Channel, exchange string, logger logrus.FieldLogger) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("rabbitmq exchange is empty")
	}

	err := ch.ExchangeDeclare(
		exchange,     // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.WithField("component", "rabbitmq-publisher"),
	}, nil
}

// Publish sends one persistent message per event and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		body, err := eventbus.Encode(e)
		if err != nil {
			return fmt.Errorf("could not marshal event: %w", err)
		}

		err = p.ch.PublishWithContext(ctx,
			p.exchange,     // exchange
			string(e.Type), // routing key
			false,          // mandatory
			false,          // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    e.ID.String(),
				Timestamp:    e.OccurredAt,
				Type:         string(e.Type),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("could not publish %s for order %s: %w", e.Type, e.OrderID, err)
		}
	}

	p.logger.WithField("events", len(events)).Debug("order events sent to rabbitmq")
	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
