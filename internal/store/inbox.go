package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Inbox sort orders and read filters.
const (
	InboxFilterRecent = "recent"
	InboxFilterOldest = "oldest"
	InboxFilterUnread = "unread"
	InboxFilterRead   = "read"
)

type InboxMessage struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	UserID    uuid.UUID     `db:"user_id" json:"user_id"`
	Sender    string        `db:"sender" json:"sender"`
	Phone     string        `db:"phone" json:"phone"`
	Email     string        `db:"email" json:"email"`
	Content   string        `db:"content" json:"content"`
	Channel   string        `db:"channel" json:"channel"`
	CallID    uuid.NullUUID `db:"call_id" json:"call_id"`
	IsRead    bool          `db:"is_read" json:"is_read"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

type InboxMessageParams struct {
	Sender         string
	Phone          string
	Email          string
	Content        string
	Channel        string
	CallID         uuid.NullUUID
	IdempotencyKey string
}

const inboxMessageColumns = `id, user_id, sender, phone, email, content, channel, call_id, is_read, created_at`

const sqlCreateInboxMessageOnce = `
INSERT INTO inbox_messages (user_id, sender, phone, email, content, channel, call_id, idempotency_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (idempotency_key) DO NOTHING`

// CreateInboxMessageOnce reports whether a row was written.
func (s *Store) CreateInboxMessageOnce(ctx context.Context, userID uuid.UUID, params InboxMessageParams) (bool, error) {
	result, err := s.db.ExecContext(ctx, sqlCreateInboxMessageOnce,
		userID, params.Sender, params.Phone, params.Email, params.Content,
		params.Channel, params.CallID, params.IdempotencyKey)
	if err != nil {
		s.logger.Error(ctx, "failed to create inbox message", err)
		return false, fmt.Errorf("failed to create inbox message: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

const sqlListInboxMessages = `
SELECT ` + inboxMessageColumns + `
FROM inbox_messages
WHERE user_id = $1
  AND ($2 = '' OR content ILIKE '%' || $2 || '%' OR sender ILIKE '%' || $2 || '%')
  AND ($3 <> 'unread' OR is_read = FALSE)
  AND ($3 <> 'read' OR is_read = TRUE)
ORDER BY
  CASE WHEN $3 = 'oldest' THEN created_at END ASC,
  created_at DESC`

// ListInboxMessages filters by read state for "unread" and "read", sorts oldest
// first for "oldest" and newest first otherwise. query matches content or sender.
func (s *Store) ListInboxMessages(ctx context.Context, userID uuid.UUID, filter, query string) ([]InboxMessage, error) {
	messages := []InboxMessage{}
	err := s.db.SelectContext(ctx, &messages, sqlListInboxMessages, userID, query, filter)
	if err != nil {
		s.logger.Error(ctx, "failed to list inbox messages", err)
		return nil, fmt.Errorf("failed to list inbox messages: %w", err)
	}
	return messages, nil
}

const sqlGetInboxMessage = `
SELECT ` + inboxMessageColumns + `
FROM inbox_messages
WHERE id = $1 AND user_id = $2`

func (s *Store) GetInboxMessage(ctx context.Context, userID, messageID uuid.UUID) (InboxMessage, error) {
	var message InboxMessage
	err := s.db.GetContext(ctx, &message, sqlGetInboxMessage, messageID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InboxMessage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get inbox message", err)
		return InboxMessage{}, fmt.Errorf("failed to get inbox message: %w", err)
	}
	return message, nil
}

const sqlSetInboxMessageRead = `
UPDATE inbox_messages
SET is_read = $3
WHERE id = $1 AND user_id = $2
RETURNING ` + inboxMessageColumns

func (s *Store) SetInboxMessageRead(ctx context.Context, userID, messageID uuid.UUID, read bool) (InboxMessage, error) {
	var message InboxMessage
	err := s.db.GetContext(ctx, &message, sqlSetInboxMessageRead, messageID, userID, read)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InboxMessage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set inbox message read state", err)
		return InboxMessage{}, fmt.Errorf("failed to set inbox message read state: %w", err)
	}
	return message, nil
}
