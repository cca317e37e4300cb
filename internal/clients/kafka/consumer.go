package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ialynk-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// messageReader is the subset of *kafka.Reader the consumer loop needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer handles consuming events from Kafka
type Consumer struct {
	reader messageReader
	logger *observability.Logger
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 10e3 // 10KB
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       config.MinBytes,
		MaxBytes:       config.MaxBytes,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: 0, // Manual commit
	})

	return &Consumer{
		reader: reader,
		logger: logger,
	}
}

// ConsumeEvents fetches events until ctx is done. Undecodable messages are committed and
// skipped; a handler error leaves the message uncommitted so it is redelivered.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler func(context.Context, EventMessage) error) error {
	c.logger.Info(ctx, "Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info(ctx, "Stopping Kafka consumer")
				return ctx.Err()
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			continue
		}

		var event EventMessage
		err = json.Unmarshal(msg.Value, &event)
		if err != nil {
			c.logger.Error(ctx, "failed to unmarshal event", err)
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error(ctx, "failed to commit undecodable message", err)
			}
			continue
		}

		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: event.Type},
			observability.Field{Key: "event_id", Value: event.ID},
			observability.Field{Key: "partition", Value: msg.Partition},
			observability.Field{Key: "offset", Value: msg.Offset},
		)

		err = handler(msgCtx, event)
		if err != nil {
			c.logger.Error(msgCtx, "failed to process event", err)
			continue
		}

		err = c.reader.CommitMessages(msgCtx, msg)
		if err != nil {
			c.logger.Error(msgCtx, "failed to commit message", err)
			continue
		}

		c.logger.Debug(msgCtx, fmt.Sprintf("successfully processed event %s", event.Type))
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
