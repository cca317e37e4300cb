// Package worker turns call lifecycle events into call log rows, transcripts, inbox
// messages and agency notifications.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ialynk-server/internal/clients/kafka"
	"ialynk-server/internal/email"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"
	"ialynk-server/internal/voicecall/events"

	"github.com/google/uuid"
)

const sideEffectTimeout = 5 * time.Second

type Config struct {
	NotifyEmail     string
	RealtimeChannel string
	WebAppURI       string
}

// RealtimeMessage is pushed to dashboards after every change to a call.
type RealtimeMessage struct {
	Type      string    `json:"type"`
	EventType string    `json:"event_type"`
	CallID    uuid.UUID `json:"call_id"`
	Status    string    `json:"status"`
}

type CallLogWorker struct {
	config   Config
	store    CallStore
	notifier Notifier
	realtime RealtimePublisher
	logger   *observability.Logger
}

// New builds the worker. notifier and realtime may be nil when email or Redis is not
// configured.
func New(
	config Config,
	store CallStore,
	notifier Notifier,
	realtime RealtimePublisher,
	logger *observability.Logger,
) *CallLogWorker {
	return &CallLogWorker{
		config:   config,
		store:    store,
		notifier: notifier,
		realtime: realtime,
		logger:   logger,
	}
}

// Process handles one consumed message. A returned error leaves the message uncommitted;
// messages that can never succeed are logged and acknowledged.
func (w *CallLogWorker) Process(ctx context.Context, msg kafka.EventMessage) error {
	event, err := events.Decode(msg)
	if err != nil {
		if errors.Is(err, events.ErrUnknownEventType) {
			w.logger.Warn(ctx, fmt.Sprintf("skipping event of unknown type %q", msg.Type))
		} else {
			w.logger.Error(ctx, "skipping undecodable call event", err)
		}
		return nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: event.CallID},
		observability.Field{Key: "provider", Value: event.Provider},
	)

	var call store.Call
	switch event.Type {
	case events.TypeCallInitiated:
		call, err = w.upsert(ctx, event, store.CallStatusRinging)
	case events.TypeTurnCompleted:
		call, err = w.handleTurn(ctx, event)
	case events.TypeCallEnded:
		call, err = w.upsert(ctx, event, store.CallStatusEnded)
	}
	if err != nil {
		return err
	}

	w.notifyRealtime(ctx, event.Type, call)
	return nil
}

func (w *CallLogWorker) upsert(ctx context.Context, event events.CallEvent, status string) (store.Call, error) {
	call, err := w.store.UpsertCall(ctx, store.UpsertCallParams{
		Provider:       event.Provider,
		ProviderCallID: event.CallID,
		FromNumber:     event.From,
		ToNumber:       event.To,
		Direction:      event.Direction,
		Status:         status,
		OccurredAt:     event.OccurredAt,
	})
	if err != nil {
		w.logger.Error(ctx, "failed to upsert call", err)
		return store.Call{}, fmt.Errorf("upsert call: %w", err)
	}
	return call, nil
}

func (w *CallLogWorker) handleTurn(ctx context.Context, event events.CallEvent) (store.Call, error) {
	call, err := w.upsert(ctx, event, store.CallStatusAnswered)
	if err != nil {
		return store.Call{}, err
	}

	conversationID, err := w.store.EnsureCallConversation(ctx, call.ID)
	if err != nil {
		w.logger.Error(ctx, "failed to ensure call conversation", err)
		return store.Call{}, fmt.Errorf("ensure conversation: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversationID.String()})

	recordingID := event.RecordingID
	if recordingID == "" {
		recordingID = "turn"
	}

	inserted := false
	for _, m := range []struct{ role, content string }{
		{store.MessageRoleUser, event.Transcript},
		{store.MessageRoleAssistant, event.Reply},
	} {
		if strings.TrimSpace(m.content) == "" {
			continue
		}
		created, err := w.store.CreateMessageOnce(ctx, conversationID, m.role, m.content,
			IdempotencyKey(event.CallID, recordingID, m.role))
		if err != nil {
			w.logger.Error(ctx, fmt.Sprintf("failed to save %s message", m.role), err)
			return store.Call{}, fmt.Errorf("save %s message: %w", m.role, err)
		}
		inserted = inserted || created
	}

	delivered, err := w.deliverToInbox(ctx, event, call, recordingID)
	if err != nil {
		return store.Call{}, err
	}
	inserted = inserted || delivered

	// A redelivered turn finds its messages already stored and sends nothing.
	if inserted {
		w.sendSummary(ctx, event, call)
	} else {
		w.logger.Info(ctx, "turn already recorded")
	}
	return call, nil
}

// deliverToInbox leaves the caller's request in the inbox of the number's owner.
// Calls to a number nobody claimed stay in the call log only.
func (w *CallLogWorker) deliverToInbox(ctx context.Context, event events.CallEvent, call store.Call, recordingID string) (bool, error) {
	if !call.UserID.Valid || strings.TrimSpace(event.Transcript) == "" {
		return false, nil
	}
	created, err := w.store.CreateInboxMessageOnce(ctx, call.UserID.UUID, store.InboxMessageParams{
		Sender:         call.FromNumber,
		Phone:          call.FromNumber,
		Content:        event.Transcript,
		Channel:        store.InboxChannelCall,
		CallID:         uuid.NullUUID{UUID: call.ID, Valid: true},
		IdempotencyKey: IdempotencyKey(event.CallID, recordingID, "inbox"),
	})
	if err != nil {
		w.logger.Error(ctx, "failed to save inbox message", err)
		return false, fmt.Errorf("save inbox message: %w", err)
	}
	return created, nil
}

// IdempotencyKey identifies one message of one recorded turn.
func IdempotencyKey(callID, recordingID, role string) string {
	return callID + ":" + recordingID + ":" + role
}

// sendSummary is best effort: the turn is already stored.
func (w *CallLogWorker) sendSummary(ctx context.Context, event events.CallEvent, call store.Call) {
	if w.notifier == nil || w.config.NotifyEmail == "" {
		return
	}

	summary := email.CallSummary{
		From:       call.FromNumber,
		To:         call.ToNumber,
		Provider:   call.Provider,
		Transcript: event.Transcript,
		Reply:      event.Reply,
		OccurredAt: event.OccurredAt,
	}
	if w.config.WebAppURI != "" {
		summary.CallLink = strings.TrimRight(w.config.WebAppURI, "/") + "/calls/" + call.ID.String()
	}

	sendCtx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()
	if err := w.notifier.SendCallSummary(sendCtx, w.config.NotifyEmail, summary); err != nil {
		w.logger.Error(ctx, "failed to notify agency of call", err)
	}
}

func (w *CallLogWorker) notifyRealtime(ctx context.Context, eventType string, call store.Call) {
	if w.realtime == nil || w.config.RealtimeChannel == "" {
		return
	}

	payload, err := json.Marshal(RealtimeMessage{
		Type:      "call.updated",
		EventType: eventType,
		CallID:    call.ID,
		Status:    call.Status,
	})
	if err != nil {
		w.logger.Error(ctx, "failed to marshal realtime message", err)
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()
	if err := w.realtime.Publish(publishCtx, w.config.RealtimeChannel, payload); err != nil {
		w.logger.Error(ctx, "failed to publish realtime message", err)
	}
}
