package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// Event is one domain event ready for the wire.
type Event struct {
	Topic         string
	EventType     string
	AggregateType string
	AggregateID   string
	Payload       []byte
}

// Publisher hands domain events to the message broker. Implementations must
// be safe for use from request handlers; a failed publish is the caller's
// to log, not to fail the request over.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafkago.Writer
}

// NewPublisher builds a kafka-backed Publisher over the given brokers.
func NewPublisher(brokers []string) Publisher {
	return &kafkaPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Balancer: &kafkago.LeastBytes{},
		},
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops every event. Used when no
// brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (noopPublisher) Close() error { return nil }
