package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/config"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

// NewKafkaPublisher writes lifecycle events keyed by order id, so every
// order keeps its events in one partition. Writes are async and never
// hold up the caller.
func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	p := &kafkaPublisher{logger: logger.With(slog.String("component", "publisher"))}
	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             p.completion,
	}
	return p
}

func (p *kafkaPublisher) Publish(ctx context.Context, e entities.LifecycleEvent) error {
	m, err := message(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, m)
}

func (p *kafkaPublisher) completion(messages []kafka.Message, err error) {
	if err != nil {
		eventsPublished.WithLabelValues("error").Add(float64(len(messages)))
		p.logger.Error("failed to publish lifecycle events", slog.Int("count", len(messages)), slog.Any("error", err))
		return
	}
	eventsPublished.WithLabelValues("ok").Add(float64(len(messages)))
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func message(e entities.LifecycleEvent) (kafka.Message, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal lifecycle event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(e.OrderID),
		Value: data,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}, nil
}

type noopPublisher struct{}

// NewNoop is used when no brokers are configured.
func NewNoop() noopPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, entities.LifecycleEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
