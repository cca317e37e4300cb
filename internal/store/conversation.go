package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	UserID    uuid.NullUUID `db:"user_id" json:"user_id"`
	Channel   string        `db:"channel" json:"channel"`
	Title     *string       `db:"title" json:"title,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

type Message struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	ConversationID uuid.UUID      `db:"conversation_id" json:"conversation_id"`
	Role           string         `db:"role" json:"role"`
	Content        string         `db:"content" json:"content"`
	IdempotencyKey sql.NullString `db:"idempotency_key" json:"-"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

const conversationColumns = `id, user_id, channel, title, created_at, updated_at`

const sqlGetConversationForUser = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE id = $1 AND user_id = $2 AND channel = 'assistant'`

// GetConversationForUser only returns assistant conversations owned by userID.
func (s *Store) GetConversationForUser(ctx context.Context, id, userID uuid.UUID) (Conversation, error) {
	var conversation Conversation
	err := s.db.GetContext(ctx, &conversation, sqlGetConversationForUser, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversation{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get conversation by ID", err)
		return Conversation{}, fmt.Errorf("failed to get conversation by ID: %w", err)
	}
	return conversation, nil
}

const sqlCreateAssistantConversation = `
INSERT INTO conversations (user_id, channel, title)
VALUES ($1, 'assistant', $2)
RETURNING ` + conversationColumns

func (s *Store) CreateConversation(ctx context.Context, userID uuid.UUID, title string) (Conversation, error) {
	var conversation Conversation
	err := s.db.GetContext(ctx, &conversation, sqlCreateAssistantConversation, userID, sql.NullString{String: title, Valid: title != ""})
	if err != nil {
		s.logger.Error(ctx, "failed to create conversation", err)
		return Conversation{}, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conversation, nil
}

const sqlGetAllConversationsByUserID = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE user_id = $1 AND channel = 'assistant'
ORDER BY updated_at DESC`

func (s *Store) GetAllConversationsByUserID(ctx context.Context, userID uuid.UUID) ([]Conversation, error) {
	conversations := []Conversation{}
	err := s.db.SelectContext(ctx, &conversations, sqlGetAllConversationsByUserID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get all conversations by user ID", err)
		return nil, fmt.Errorf("failed to get all conversations by user ID: %w", err)
	}
	return conversations, nil
}

const sqlGetAllMessagesByConversationID = `
SELECT id, conversation_id, role, content, idempotency_key, created_at
FROM messages
WHERE conversation_id = $1
ORDER BY created_at ASC, id ASC`

func (s *Store) GetAllMessagesByConversationID(ctx context.Context, conversationID uuid.UUID) ([]Message, error) {
	messages := []Message{}
	err := s.db.SelectContext(ctx, &messages, sqlGetAllMessagesByConversationID, conversationID)
	if err != nil {
		s.logger.Error(ctx, "failed to get all messages by conversation ID", err)
		return nil, fmt.Errorf("failed to get all messages by conversation ID: %w", err)
	}
	return messages, nil
}

const sqlCreateMessage = `
INSERT INTO messages (conversation_id, role, content)
VALUES ($1, $2, $3)
RETURNING id, conversation_id, role, content, idempotency_key, created_at`

const sqlTouchConversation = `
UPDATE conversations SET updated_at = NOW() WHERE id = $1`

func (s *Store) CreateMessage(ctx context.Context, conversationID uuid.UUID, role, content string) (Message, error) {
	var message Message
	err := s.db.GetContext(ctx, &message, sqlCreateMessage, conversationID, role, content)
	if err != nil {
		s.logger.Error(ctx, "failed to create message", err)
		return Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, sqlTouchConversation, conversationID); err != nil {
		s.logger.Error(ctx, "failed to touch conversation", err)
	}
	return message, nil
}

const sqlCreateMessageOnce = `
INSERT INTO messages (conversation_id, role, content, idempotency_key)
VALUES ($1, $2, $3, $4)
ON CONFLICT (idempotency_key) DO NOTHING`

// CreateMessageOnce inserts a message unless one with the same idempotency key
// already exists. It reports whether a row was written.
func (s *Store) CreateMessageOnce(ctx context.Context, conversationID uuid.UUID, role, content, idempotencyKey string) (bool, error) {
	result, err := s.db.ExecContext(ctx, sqlCreateMessageOnce, conversationID, role, content, idempotencyKey)
	if err != nil {
		s.logger.Error(ctx, "failed to create idempotent message", err)
		return false, fmt.Errorf("failed to create idempotent message: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		if _, err := s.db.ExecContext(ctx, sqlTouchConversation, conversationID); err != nil {
			s.logger.Error(ctx, "failed to touch conversation", err)
		}
	}
	return rowsAffected > 0, nil
}
