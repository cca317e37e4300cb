package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

type CallStore interface {
	ListRecentCalls(ctx context.Context, userID uuid.UUID, limit int) ([]store.Call, error)
	GetCallByID(ctx context.Context, userID, callID uuid.UUID) (store.Call, error)
	GetAllMessagesByConversationID(ctx context.Context, conversationID uuid.UUID) ([]store.Message, error)
}
