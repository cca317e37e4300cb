package worker

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=worker

import (
	"context"

	"ialynk-server/internal/email"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

type CallStore interface {
	UpsertCall(ctx context.Context, params store.UpsertCallParams) (store.Call, error)
	EnsureCallConversation(ctx context.Context, callID uuid.UUID) (uuid.UUID, error)
	CreateMessageOnce(ctx context.Context, conversationID uuid.UUID, role, content, idempotencyKey string) (bool, error)
	CreateInboxMessageOnce(ctx context.Context, userID uuid.UUID, params store.InboxMessageParams) (bool, error)
}

type Notifier interface {
	SendCallSummary(ctx context.Context, to string, summary email.CallSummary) error
}

// RealtimePublisher is satisfied by the Redis client.
type RealtimePublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}
