// Package kafka publishes derived flood alerts to a Kafka topic for
// downstream consumers (notification fan-out, alert-text composition).
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/itsRabb/risqmap-status/internal/config"
	"github.com/itsRabb/risqmap-status/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces flood alerts to the alert topic. It implements
// gauges.AlertPublisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured alert topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAlertTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishAlerts serializes and publishes the alerts in a single
// WriteMessages call.
func (p *Publisher) PublishAlerts(ctx context.Context, alerts []domain.FloodAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(alerts))
	for i := range alerts {
		msg, err := serializeAlert(alerts[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeAlert marshals a FloodAlert into a Kafka message keyed by gauge
// code, so all alerts for one gauge land on the same partition in order.
func serializeAlert(alert domain.FloodAlert) (kafkago.Message, error) {
	data, err := json.Marshal(alert)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize flood alert: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(alert.GaugeCode),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "kind", Value: []byte(alert.Kind)},
			{Key: "severity", Value: []byte(alert.Severity)},
			{Key: "issued_at", Value: []byte(alert.IssuedAt.Format(time.RFC3339))},
		},
	}, nil
}
