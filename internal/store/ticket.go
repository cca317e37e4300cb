package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	UserID      uuid.UUID     `db:"user_id" json:"user_id"`
	ContactID   uuid.NullUUID `db:"contact_id" json:"contact_id"`
	Title       string        `db:"title" json:"title"`
	Description string        `db:"description" json:"description"`
	Status      string        `db:"status" json:"status"`
	Priority    string        `db:"priority" json:"priority"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

type TicketHistory struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TicketID  uuid.UUID `db:"ticket_id" json:"ticket_id"`
	ChangedBy uuid.UUID `db:"changed_by" json:"changed_by"`
	Field     string    `db:"field" json:"field"`
	OldValue  string    `db:"old_value" json:"old_value"`
	NewValue  string    `db:"new_value" json:"new_value"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type TicketParams struct {
	ContactID   uuid.NullUUID
	Title       string
	Description string
	Status      string
	Priority    string
}

// TicketChange is one field edit recorded in ticket_history.
type TicketChange struct {
	Field    string
	OldValue string
	NewValue string
}

const ticketColumns = `id, user_id, contact_id, title, description, status, priority, created_at, updated_at`

const sqlCreateTicket = `
INSERT INTO tickets (user_id, contact_id, title, description, status, priority)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + ticketColumns

func (s *Store) CreateTicket(ctx context.Context, userID uuid.UUID, params TicketParams) (Ticket, error) {
	var ticket Ticket
	err := s.db.GetContext(ctx, &ticket, sqlCreateTicket,
		userID, params.ContactID, params.Title, params.Description, params.Status, params.Priority)
	if err != nil {
		s.logger.Error(ctx, "failed to create ticket", err)
		return Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

const sqlGetTicketByID = `
SELECT ` + ticketColumns + `
FROM tickets
WHERE id = $1 AND user_id = $2`

func (s *Store) GetTicketByID(ctx context.Context, userID, ticketID uuid.UUID) (Ticket, error) {
	var ticket Ticket
	err := s.db.GetContext(ctx, &ticket, sqlGetTicketByID, ticketID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ticket{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get ticket by id", err)
		return Ticket{}, fmt.Errorf("failed to get ticket by id: %w", err)
	}
	return ticket, nil
}

const sqlListTickets = `
SELECT ` + ticketColumns + `
FROM tickets
WHERE user_id = $1
ORDER BY updated_at DESC`

func (s *Store) ListTickets(ctx context.Context, userID uuid.UUID) ([]Ticket, error) {
	tickets := []Ticket{}
	err := s.db.SelectContext(ctx, &tickets, sqlListTickets, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list tickets", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

const sqlUpdateTicket = `
UPDATE tickets
SET contact_id = $3, title = $4, description = $5, status = $6, priority = $7, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING ` + ticketColumns

const sqlInsertTicketHistory = `
INSERT INTO ticket_history (ticket_id, changed_by, field, old_value, new_value)
VALUES ($1, $2, $3, $4, $5)`

// UpdateTicket writes the ticket and its history rows in one transaction.
func (s *Store) UpdateTicket(
	ctx context.Context, userID, ticketID uuid.UUID, params TicketParams, changes []TicketChange) (Ticket, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Ticket{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var ticket Ticket
	err = tx.GetContext(ctx, &ticket, sqlUpdateTicket,
		ticketID, userID, params.ContactID, params.Title, params.Description, params.Status, params.Priority)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ticket{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update ticket", err)
		return Ticket{}, fmt.Errorf("failed to update ticket: %w", err)
	}

	for _, change := range changes {
		_, err = tx.ExecContext(ctx, sqlInsertTicketHistory, ticketID, userID, change.Field, change.OldValue, change.NewValue)
		if err != nil {
			s.logger.Error(ctx, "failed to insert ticket history", err)
			return Ticket{}, fmt.Errorf("failed to insert ticket history: %w", err)
		}
	}

	err = tx.Commit()
	if err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Ticket{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return ticket, nil
}

const sqlDeleteTicket = `
DELETE FROM tickets WHERE id = $1 AND user_id = $2`

func (s *Store) DeleteTicket(ctx context.Context, userID, ticketID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteTicket, ticketID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete ticket", err)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetTicketHistory = `
SELECT id, ticket_id, changed_by, field, old_value, new_value, created_at
FROM ticket_history
WHERE ticket_id = $1
ORDER BY created_at ASC, id ASC`

func (s *Store) GetTicketHistory(ctx context.Context, ticketID uuid.UUID) ([]TicketHistory, error) {
	history := []TicketHistory{}
	err := s.db.SelectContext(ctx, &history, sqlGetTicketHistory, ticketID)
	if err != nil {
		s.logger.Error(ctx, "failed to get ticket history", err)
		return nil, fmt.Errorf("failed to get ticket history: %w", err)
	}
	return history, nil
}
