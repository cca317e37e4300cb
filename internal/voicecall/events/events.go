// Package events defines the call lifecycle messages written to Kafka by the webhook
// server and read back by the call log worker.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ialynk-server/internal/clients/kafka"
	"ialynk-server/internal/observability"

	"github.com/google/uuid"
)

const (
	TypeCallInitiated = "call.initiated"
	TypeTurnCompleted = "call.turn.completed"
	TypeCallEnded     = "call.ended"
)

var ErrUnknownEventType = errors.New("unknown call event type")

// CallEvent is the payload of every call lifecycle message.
type CallEvent struct {
	Type        string    `json:"type"`
	Provider    string    `json:"provider"`
	CallID      string    `json:"call_id"`
	RecordingID string    `json:"recording_id,omitempty"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to,omitempty"`
	Direction   string    `json:"direction,omitempty"`
	Transcript  string    `json:"transcript,omitempty"`
	Reply       string    `json:"reply,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Producer is satisfied by the Kafka producer client.
type Producer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher writes call events keyed by call id.
type Publisher struct {
	producer Producer
	logger   *observability.Logger
}

func NewPublisher(producer Producer, logger *observability.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, event CallEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal call event: %w", err)
	}
	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:        uuid.NewString(),
		Type:      event.Type,
		Key:       event.CallID,
		Data:      data,
		Timestamp: event.OccurredAt.Format(time.RFC3339Nano),
	})
}

// NoopPublisher drops every event. It is used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, CallEvent) error { return nil }

// Decode extracts the call event from a consumed envelope.
func Decode(msg kafka.EventMessage) (CallEvent, error) {
	switch msg.Type {
	case TypeCallInitiated, TypeTurnCompleted, TypeCallEnded:
	default:
		return CallEvent{}, fmt.Errorf("%q: %w", msg.Type, ErrUnknownEventType)
	}
	var event CallEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		return CallEvent{}, fmt.Errorf("failed to decode call event: %w", err)
	}
	if event.CallID == "" {
		return CallEvent{}, errors.New("call event has no call id")
	}
	event.Type = msg.Type
	return event, nil
}
