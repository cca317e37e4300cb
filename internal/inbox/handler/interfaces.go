package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// InboxProcessor defines the interface for inbox business logic
type InboxProcessor interface {
	ListMessages(ctx context.Context, userID uuid.UUID, filter, query string) ([]store.InboxMessage, error)
	OpenMessage(ctx context.Context, userID, messageID uuid.UUID) (store.InboxMessage, error)
	SetRead(ctx context.Context, userID, messageID uuid.UUID, read bool) (store.InboxMessage, error)
}
