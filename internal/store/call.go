package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Call struct {
	ID             uuid.UUID     `db:"id" json:"id"`
	UserID         uuid.NullUUID `db:"user_id" json:"user_id"`
	Provider       string        `db:"provider" json:"provider"`
	ProviderCallID string        `db:"provider_call_id" json:"provider_call_id"`
	FromNumber     string        `db:"from_number" json:"from_number"`
	ToNumber       string        `db:"to_number" json:"to_number"`
	Direction      string        `db:"direction" json:"direction"`
	Status         string        `db:"status" json:"status"`
	ConversationID uuid.NullUUID `db:"conversation_id" json:"conversation_id"`
	StartedAt      time.Time     `db:"started_at" json:"started_at"`
	EndedAt        *time.Time    `db:"ended_at" json:"ended_at,omitempty"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

type UpsertCallParams struct {
	Provider       string
	ProviderCallID string
	FromNumber     string
	ToNumber       string
	Direction      string
	Status         string
	OccurredAt     time.Time
}

const callColumns = `id, user_id, provider, provider_call_id, from_number, to_number, direction, status, conversation_id, started_at, ended_at, updated_at`

// An ended call never goes back to an earlier status, and empty numbers never
// overwrite known ones, so redelivered or reordered events are harmless.
// The owner is the user whose telephony settings hold the called number; once
// set it never changes.
const sqlUpsertCall = `
INSERT INTO calls (provider, provider_call_id, from_number, to_number, direction, status, started_at, ended_at, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, CASE WHEN $6 = 'ended' THEN $7::timestamptz END,
        (SELECT user_id FROM telephony_settings WHERE phone_number = $8 AND $8 <> '' LIMIT 1))
ON CONFLICT (provider, provider_call_id) DO UPDATE SET
    user_id     = COALESCE(calls.user_id, EXCLUDED.user_id),
    from_number = COALESCE(NULLIF(EXCLUDED.from_number, ''), calls.from_number),
    to_number   = COALESCE(NULLIF(EXCLUDED.to_number, ''), calls.to_number),
    direction   = COALESCE(NULLIF(EXCLUDED.direction, ''), calls.direction),
    status      = CASE
                      WHEN calls.status = 'ended' THEN calls.status
                      WHEN calls.status = 'answered' AND EXCLUDED.status = 'ringing' THEN calls.status
                      ELSE EXCLUDED.status
                  END,
    started_at  = LEAST(calls.started_at, EXCLUDED.started_at),
    ended_at    = COALESCE(calls.ended_at, EXCLUDED.ended_at),
    updated_at  = NOW()
RETURNING ` + callColumns

func (s *Store) UpsertCall(ctx context.Context, params UpsertCallParams) (Call, error) {
	occurredAt := params.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	var call Call
	err := s.db.GetContext(ctx, &call, sqlUpsertCall,
		params.Provider, params.ProviderCallID, params.FromNumber, params.ToNumber,
		params.Direction, params.Status, occurredAt, NormalizePhoneNumber(params.ToNumber))
	if err != nil {
		s.logger.Error(ctx, "failed to upsert call", err)
		return Call{}, fmt.Errorf("failed to upsert call: %w", err)
	}
	return call, nil
}

const sqlLockCall = `
SELECT ` + callColumns + ` FROM calls WHERE id = $1 FOR UPDATE`

const sqlCreateCallConversation = `
INSERT INTO conversations (user_id, channel, title)
VALUES ($1, 'call', $2)
RETURNING id`

const sqlSetCallConversation = `
UPDATE calls SET conversation_id = $2 WHERE id = $1`

// EnsureCallConversation returns the conversation holding the call transcript,
// creating it on first use.
func (s *Store) EnsureCallConversation(ctx context.Context, callID uuid.UUID) (uuid.UUID, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var call Call
	err = tx.GetContext(ctx, &call, sqlLockCall, callID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock call", err)
		return uuid.Nil, fmt.Errorf("failed to lock call: %w", err)
	}
	if call.ConversationID.Valid {
		err = tx.Commit()
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return call.ConversationID.UUID, nil
	}

	var conversationID uuid.UUID
	title := "Appel " + call.FromNumber
	err = tx.GetContext(ctx, &conversationID, sqlCreateCallConversation, call.UserID, title)
	if err != nil {
		s.logger.Error(ctx, "failed to create call conversation", err)
		return uuid.Nil, fmt.Errorf("failed to create call conversation: %w", err)
	}
	_, err = tx.ExecContext(ctx, sqlSetCallConversation, callID, conversationID)
	if err != nil {
		s.logger.Error(ctx, "failed to link call conversation", err)
		return uuid.Nil, fmt.Errorf("failed to link call conversation: %w", err)
	}
	err = tx.Commit()
	if err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return conversationID, nil
}

const sqlListRecentCalls = `
SELECT ` + callColumns + `
FROM calls
WHERE user_id = $1
ORDER BY started_at DESC
LIMIT $2`

// ListRecentCalls returns the calls placed to the user's number, newest first.
func (s *Store) ListRecentCalls(ctx context.Context, userID uuid.UUID, limit int) ([]Call, error) {
	calls := []Call{}
	err := s.db.SelectContext(ctx, &calls, sqlListRecentCalls, userID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list recent calls", err)
		return nil, fmt.Errorf("failed to list recent calls: %w", err)
	}
	return calls, nil
}

const sqlGetCallByID = `
SELECT ` + callColumns + `
FROM calls
WHERE id = $1 AND user_id = $2`

func (s *Store) GetCallByID(ctx context.Context, userID, callID uuid.UUID) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlGetCallByID, callID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call by id", err)
		return Call{}, fmt.Errorf("failed to get call by id: %w", err)
	}
	return call, nil
}
