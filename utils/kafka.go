package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/cheruvugattu/temple-booking-backend/config"
)

var kafkaWriter *kafka.Writer

// Event is the envelope published on the temple event stream. The in-app
// notification consumer turns these into notification rows.
type Event struct {
	Type      string `json:"type"` // e.g. BOOKING_CONFIRMED, DONATION_RECEIVED
	DevoteeID string `json:"devotee_id,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Category  string `json:"category"`
}

// InitializeKafka sets up the shared writer. Kafka is optional: without
// brokers configured, PublishEvent is a no-op.
func InitializeKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("ℹ️ KAFKA_BROKERS not set, event publishing disabled")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	log.Printf("✅ Kafka writer ready (topic %s)", cfg.KafkaTopic)
}

// PublishEvent is fire-and-forget: a broker outage must never fail the
// request that triggered the event.
func PublishEvent(evt Event) {
	if kafkaWriter == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		log.Printf("⚠️ Failed to marshal event %s: %v", evt.Type, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := kafkaWriter.WriteMessages(ctx, kafka.Message{
			Key:   []byte(evt.Type),
			Value: payload,
		}); err != nil {
			log.Printf("⚠️ Failed to publish event %s: %v", evt.Type, err)
		}
	}()
}

// NewEventReader returns a reader for the temple event stream, or nil when
// Kafka is disabled.
func NewEventReader(cfg *config.Config) *kafka.Reader {
	if cfg.KafkaBrokers == "" {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(cfg.KafkaBrokers, ","),
		Topic:   cfg.KafkaTopic,
		GroupID: "temple-notifications",
	})
}
