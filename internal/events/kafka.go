// Package events publishes and consumes the audit events of admin operations.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/SergeyBogomolovv/shop-admin/internal/config"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes the event keyed by its type, so events of one type keep their order.
func (p *kafkaPublisher) Publish(ctx context.Context, event entities.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write event %s: %w", event.ID, err)
	}

	p.logger.DebugContext(ctx, "event published", "id", event.ID, "type", event.Type)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type nopPublisher struct{}

// NewNopPublisher drops every event, for deployments without Kafka.
func NewNopPublisher() nopPublisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, entities.Event) error { return nil }

func (nopPublisher) Close() error { return nil }

type kafkaConsumer struct {
	reader *kafka.Reader
	logger *slog.Logger
}

func NewKafkaConsumer(logger *slog.Logger, cfg config.Kafka) *kafkaConsumer {
	return &kafkaConsumer{
		logger: logger.With(slog.String("component", "events")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
	}
}

// Consume passes every event to handle until ctx is done. Malformed messages
// are logged and committed so they do not block the group.
func (c *kafkaConsumer) Consume(ctx context.Context, handle func(entities.Event) error) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		event, err := Decode(m.Value)
		if err != nil {
			c.logger.Error("failed to decode event", slog.Any("error", err), slog.Int64("offset", m.Offset))
		} else if err := handle(event); err != nil {
			return fmt.Errorf("failed to handle event %s: %w", event.ID, err)
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (c *kafkaConsumer) Close() error {
	return c.reader.Close()
}

func Decode(value []byte) (entities.Event, error) {
	var event entities.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return entities.Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.ID == "" || event.Type == "" {
		return entities.Event{}, fmt.Errorf("%w: event without id or type", entities.ErrInvalidDocument)
	}
	return event, nil
}
