// Package kafka publishes committed order events to a Kafka topic, keyed by
// order id so that events of one order stay in one partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/ddd"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	w messageWriter
}

// NewPublisher builds a synchronous writer for a comma separated broker list.
func NewPublisher(brokers, topic string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{w: w}
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

// Publish writes all events in one batch.
func (p *Publisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		body, err := json.Marshal(encode(e))
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.EventName(), err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.AggregateID()),
			Value: body,
			Time:  e.OccurredAt(),
			Headers: []kafka.Header{
				{Key: "content-type", Value: []byte("application/json")},
				{Key: "event-name", Value: []byte(e.EventName())},
			},
		})
	}

	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d messages: %w", len(msgs), err)
	}
	return nil
}

type envelope struct {
	Event       string    `json:"event"`
	AggregateID string    `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type orderChanged struct {
	envelope
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	VendorID      *string `json:"vendorId"`
	HasIssue      bool    `json:"hasIssue"`
}

func encode(e ddd.DomainEvent) any {
	base := envelope{
		Event:       e.EventName(),
		AggregateID: e.AggregateID(),
		OccurredAt:  e.OccurredAt().UTC(),
	}

	changed, ok := e.(order.ChangedEvent)
	if !ok {
		return base
	}

	msg := orderChanged{
		envelope:      base,
		Reason:        changed.Reason,
		Status:        changed.Status.String(),
		PaymentStatus: changed.PaymentStatus.String(),
		HasIssue:      changed.HasIssue,
	}
	if changed.VendorID != nil {
		id := changed.VendorID.String()
		msg.VendorID = &id
	}
	return msg
}
