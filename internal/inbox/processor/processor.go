package processor

import (
	"context"
	"errors"
	"strings"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrMessageNotFound = errors.New("inbox message not found")
	ErrInvalidFilter   = errors.New("invalid inbox filter")
)

var filters = map[string]bool{
	store.InboxFilterRecent: true,
	store.InboxFilterOldest: true,
	store.InboxFilterUnread: true,
	store.InboxFilterRead:   true,
}

// InboxProcessor serves the requests callers left with the voice assistant.
type InboxProcessor struct {
	store  InboxStore
	logger *observability.Logger
}

func New(store InboxStore, logger *observability.Logger) InboxProcessor {
	return InboxProcessor{
		store:  store,
		logger: logger,
	}
}

// ListMessages sorts and filters by filter, "recent" when empty, and searches
// content and sender for query.
func (p *InboxProcessor) ListMessages(ctx context.Context, userID uuid.UUID, filter, query string) ([]store.InboxMessage, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		filter = store.InboxFilterRecent
	}
	if !filters[filter] {
		return nil, ErrInvalidFilter
	}

	messages, err := p.store.ListInboxMessages(ctx, userID, filter, strings.TrimSpace(query))
	if err != nil {
		p.logger.Error(ctx, "failed to list inbox messages", err)
		return nil, err
	}
	if messages == nil {
		messages = []store.InboxMessage{}
	}
	return messages, nil
}

// OpenMessage returns a message and marks it read.
func (p *InboxProcessor) OpenMessage(ctx context.Context, userID, messageID uuid.UUID) (store.InboxMessage, error) {
	ctx = messageFields(ctx, userID, messageID)

	message, err := p.store.GetInboxMessage(ctx, userID, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.InboxMessage{}, ErrMessageNotFound
		}
		p.logger.Error(ctx, "failed to get inbox message", err)
		return store.InboxMessage{}, err
	}
	if message.IsRead {
		return message, nil
	}

	read, err := p.store.SetInboxMessageRead(ctx, userID, messageID, true)
	if err != nil {
		// the content is already loaded, the read flag can catch up on the next open
		p.logger.Error(ctx, "failed to mark inbox message read", err)
		return message, nil
	}
	return read, nil
}

func (p *InboxProcessor) SetRead(ctx context.Context, userID, messageID uuid.UUID, read bool) (store.InboxMessage, error) {
	ctx = messageFields(ctx, userID, messageID)

	message, err := p.store.SetInboxMessageRead(ctx, userID, messageID, read)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.InboxMessage{}, ErrMessageNotFound
		}
		p.logger.Error(ctx, "failed to set inbox message read state", err)
		return store.InboxMessage{}, err
	}
	return message, nil
}

func messageFields(ctx context.Context, userID, messageID uuid.UUID) context.Context {
	return observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "message_id", Value: messageID.String()},
	)
}
