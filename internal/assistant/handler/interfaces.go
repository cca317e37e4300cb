package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/assistant/processor"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

type AssistantProcessor interface {
	Chat(ctx context.Context, userID uuid.UUID, params processor.ChatParams) (processor.ChatResult, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]store.Conversation, error)
	GetConversationMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]store.Message, error)
	DraftReplies(ctx context.Context, message string, contact map[string]any) (processor.Drafts, error)
}
