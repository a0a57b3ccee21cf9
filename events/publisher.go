// Package events publishes booking lifecycle notifications to Kafka.
// Publishing is a best-effort side effect: failures are logged and never
// propagated into the request path.
package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"

	defaultTopic   = "hotel-booking.bookings"
	publishTimeout = 5 * time.Second
)

// BookingEvent is the JSON payload written for every booking change.
type BookingEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	BookingID  uint      `json:"bookingId"`
	RoomID     uint      `json:"roomId,omitempty"`
	UserID     string    `json:"userId,omitempty"`
	CheckIn    time.Time `json:"checkIn,omitempty"`
	CheckOut   time.Time `json:"checkOut,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher emits booking events. The zero-value-safe nil Publisher is a
// no-op, so callers never have to branch on whether Kafka is configured.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisherFromEnv builds a Kafka publisher from KAFKA_BROKERS (comma
// separated) and KAFKA_BOOKING_TOPIC. Returns nil when no brokers are set.
func NewPublisherFromEnv() *Publisher {
	raw := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if raw == "" {
		return nil
	}

	brokers := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if b := strings.TrimSpace(part); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil
	}

	topic := strings.TrimSpace(os.Getenv("KAFKA_BOOKING_TOPIC"))
	if topic == "" {
		topic = defaultTopic
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // key by booking id so per-booking order holds
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		ErrorLogger:  kafka.LoggerFunc(log.Printf),
	}

	log.Printf("booking events enabled (brokers=%s topic=%s)", strings.Join(brokers, ","), topic)
	return &Publisher{writer: writer}
}

// Publish writes one event, logging instead of returning on failure.
func (p *Publisher) Publish(event BookingEvent) {
	if p == nil || p.writer == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.OccurredAt = time.Now().UTC()

	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal %s for booking %d failed: %v", event.Type, event.BookingID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.BookingID), 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("events: publish %s for booking %d failed: %v", event.Type, event.BookingID, err)
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
