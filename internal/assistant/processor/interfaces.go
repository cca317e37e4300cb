package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// AssistantStore defines the database operations required by AssistantProcessor
type AssistantStore interface {
	GetConversationForUser(ctx context.Context, id, userID uuid.UUID) (store.Conversation, error)
	CreateConversation(ctx context.Context, userID uuid.UUID, title string) (store.Conversation, error)
	GetAllConversationsByUserID(ctx context.Context, userID uuid.UUID) ([]store.Conversation, error)
	GetAllMessagesByConversationID(ctx context.Context, conversationID uuid.UUID) ([]store.Message, error)
	CreateMessage(ctx context.Context, conversationID uuid.UUID, role, content string) (store.Message, error)
	GetAssistantPreferences(ctx context.Context, userID uuid.UUID) (store.AssistantPreferences, error)
}

// Completer is satisfied by the OpenAI and Gemini clients.
type Completer interface {
	Complete(ctx context.Context, req completion.Request) (string, error)
}
