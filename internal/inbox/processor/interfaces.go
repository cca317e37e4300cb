package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// InboxStore defines the database operations required by InboxProcessor
type InboxStore interface {
	ListInboxMessages(ctx context.Context, userID uuid.UUID, filter, query string) ([]store.InboxMessage, error)
	GetInboxMessage(ctx context.Context, userID, messageID uuid.UUID) (store.InboxMessage, error)
	SetInboxMessageRead(ctx context.Context, userID, messageID uuid.UUID, read bool) (store.InboxMessage, error)
}
