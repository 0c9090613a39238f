package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"recruit/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements EventPublisher on a Kafka topic. Events are keyed
// by student email so that all events for one candidate land on one partition.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous writer that waits for all in-sync replicas.
func NewKafkaPublisher(brokers, topic string, logger *slog.Logger) service.EventPublisher {
	addrs := make([]string, 0)
	for _, broker := range strings.Split(brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			addrs = append(addrs, broker)
		}
	}

	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(addrs...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// PublishHiringEvent writes one message and blocks until it is acknowledged
func (p *kafkaPublisher) PublishHiringEvent(ctx context.Context, event *service.HiringEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := make([]kafka.Header, 0, 4)
	for key, val := range eventAttributes(event) {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(val)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.StudentEmail),
		Value:   value,
		Headers: headers,
		Time:    event.OccurredAt,
	}); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("topic", p.writer.Topic),
		slog.String("type", event.Type),
		slog.String("record_id", event.RecordID),
	)

	return nil
}

// Close flushes pending writes and closes broker connections
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
