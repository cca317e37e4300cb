package processor

import (
	"context"
	"errors"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

var ErrCallNotFound = errors.New("call not found")

const (
	DefaultCallLimit = 20
	MaxCallLimit     = 100
)

// CallLogProcessor serves a user's call history: the calls placed to the number in
// their telephony settings.
type CallLogProcessor struct {
	store  CallStore
	logger *observability.Logger
}

func New(store CallStore, logger *observability.Logger) CallLogProcessor {
	return CallLogProcessor{
		store:  store,
		logger: logger,
	}
}

// ListCalls returns the most recent calls first. A non-positive limit means the default.
func (p *CallLogProcessor) ListCalls(ctx context.Context, userID uuid.UUID, limit int) ([]store.Call, error) {
	switch {
	case limit <= 0:
		limit = DefaultCallLimit
	case limit > MaxCallLimit:
		limit = MaxCallLimit
	}

	calls, err := p.store.ListRecentCalls(ctx, userID, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list calls", err)
		return nil, err
	}
	return calls, nil
}

// GetCallMessages returns the transcript of a call, empty until its first turn completes.
func (p *CallLogProcessor) GetCallMessages(ctx context.Context, userID, callID uuid.UUID) ([]store.Message, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID.String()})

	call, err := p.store.GetCallByID(ctx, userID, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCallNotFound
		}
		p.logger.Error(ctx, "failed to get call", err)
		return nil, err
	}
	if !call.ConversationID.Valid {
		return []store.Message{}, nil
	}

	messages, err := p.store.GetAllMessagesByConversationID(ctx, call.ConversationID.UUID)
	if err != nil {
		p.logger.Error(ctx, "failed to get call messages", err)
		return nil, err
	}
	if messages == nil {
		messages = []store.Message{}
	}
	return messages, nil
}
