package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// BookingEvent is the envelope published on booking lifecycle changes and
// settlement records. Consumers key on BookingID, so all events for one
// booking land in the same partition in order.
type BookingEvent struct {
	Kind       string    `json:"kind"`
	BookingID  uuid.UUID `json:"booking_id"`
	BusinessID uuid.UUID `json:"business_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingCreated     = "booking.created"
	EventBookingConfirmed   = "booking.confirmed"
	EventBookingCancelled   = "booking.cancelled"
	EventBookingCheckedIn   = "booking.checked_in"
	EventBookingCompleted   = "booking.completed"
	EventSettlementRecorded = "settlement.recorded"
)

type Publisher interface {
	Publish(ctx context.Context, evt BookingEvent) error
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(_ context.Context, evt BookingEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.BookingID.String()),
		Value: sarama.ByteEncoder(payload),
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

func (p *KafkaPublisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

// NoopPublisher is wired when no broker is configured. Events are logged at
// debug level and dropped.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, evt BookingEvent) error {
	slog.Debug("event publishing disabled, dropping event", "kind", evt.Kind, "booking_id", evt.BookingID)
	return nil
}
