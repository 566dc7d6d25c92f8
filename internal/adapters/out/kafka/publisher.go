// Package kafka publishes order events to a Kafka topic with a synchronous
// sarama producer. Messages are keyed by order identifier so that all events of
// one order land in the same partition, in order.
package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"

	"icecream/internal/adapters/out/eventbus"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

const eventTypeHeader = "event-type"

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher sends order events to one topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logrus.FieldLogger
}

// NewPublisher connects a producer to brokers.
func NewPublisher(brokers []string, topic string, logger logrus.FieldLogger) (*Publisher, error) {
	if topic == "" {
		return nil, errors.New("kafka topic is empty")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger logrus.FieldLogger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.WithField("component", "kafka-publisher"),
	}
}

// Publish sends the events as one batch.
func (p *Publisher) Publish(_ context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for _, e := range events {
		body, err := eventbus.Encode(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(e.OrderID.String()),
			Value: sarama.ByteEncoder(body),
			Headers: []sarama.RecordHeader{
				{Key: []byte(eventTypeHeader), Value: []byte(e.Type)},
			},
			Timestamp: e.OccurredAt,
		})
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("failed to send %d order events to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.WithFields(logrus.Fields{
		"topic":  p.topic,
		"events": len(msgs),
	}).Debug("order events sent to kafka")
	return nil
}

func (p *Publisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
