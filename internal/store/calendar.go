package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CalendarEvent struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Title        string    `db:"title" json:"title"`
	Type         string    `db:"type" json:"type"`
	Status       string    `db:"status" json:"status"`
	Property     string    `db:"property" json:"property"`
	ContactName  string    `db:"contact_name" json:"contact_name"`
	ContactEmail string    `db:"contact_email" json:"contact_email"`
	ContactPhone string    `db:"contact_phone" json:"contact_phone"`
	StartTime    time.Time `db:"start_time" json:"start_time"`
	EndTime      time.Time `db:"end_time" json:"end_time"`
	Notes        string    `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CalendarEventParams struct {
	Title        string
	Type         string
	Status       string
	Property     string
	ContactName  string
	ContactEmail string
	ContactPhone string
	StartTime    time.Time
	EndTime      time.Time
	Notes        string
}

const calendarEventColumns = `id, user_id, title, type, status, property, contact_name, contact_email, contact_phone, start_time, end_time, notes, created_at, updated_at`

const sqlCreateCalendarEvent = `
INSERT INTO calendar_events (user_id, title, type, status, property, contact_name, contact_email, contact_phone, start_time, end_time, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + calendarEventColumns

func (s *Store) CreateCalendarEvent(ctx context.Context, userID uuid.UUID, params CalendarEventParams) (CalendarEvent, error) {
	var event CalendarEvent
	err := s.db.GetContext(ctx, &event, sqlCreateCalendarEvent,
		userID, params.Title, params.Type, params.Status, params.Property, params.ContactName,
		params.ContactEmail, params.ContactPhone, params.StartTime, params.EndTime, params.Notes)
	if err != nil {
		s.logger.Error(ctx, "failed to create calendar event", err)
		return CalendarEvent{}, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return event, nil
}

const sqlGetCalendarEventByID = `
SELECT ` + calendarEventColumns + `
FROM calendar_events
WHERE id = $1 AND user_id = $2`

func (s *Store) GetCalendarEventByID(ctx context.Context, userID, eventID uuid.UUID) (CalendarEvent, error) {
	var event CalendarEvent
	err := s.db.GetContext(ctx, &event, sqlGetCalendarEventByID, eventID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CalendarEvent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get calendar event by id", err)
		return CalendarEvent{}, fmt.Errorf("failed to get calendar event by id: %w", err)
	}
	return event, nil
}

// Events overlapping [from, to) are returned; a zero bound is open.
const sqlListCalendarEvents = `
SELECT ` + calendarEventColumns + `
FROM calendar_events
WHERE user_id = $1
  AND ($2::timestamptz IS NULL OR end_time > $2)
  AND ($3::timestamptz IS NULL OR start_time < $3)
ORDER BY start_time ASC`

func (s *Store) ListCalendarEvents(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CalendarEvent, error) {
	events := []CalendarEvent{}
	err := s.db.SelectContext(ctx, &events, sqlListCalendarEvents, userID, nullTime(from), nullTime(to))
	if err != nil {
		s.logger.Error(ctx, "failed to list calendar events", err)
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

const sqlUpdateCalendarEvent = `
UPDATE calendar_events
SET title = $3, type = $4, status = $5, property = $6, contact_name = $7, contact_email = $8,
    contact_phone = $9, start_time = $10, end_time = $11, notes = $12, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING ` + calendarEventColumns

func (s *Store) UpdateCalendarEvent(ctx context.Context, userID, eventID uuid.UUID, params CalendarEventParams) (CalendarEvent, error) {
	var event CalendarEvent
	err := s.db.GetContext(ctx, &event, sqlUpdateCalendarEvent,
		eventID, userID, params.Title, params.Type, params.Status, params.Property, params.ContactName,
		params.ContactEmail, params.ContactPhone, params.StartTime, params.EndTime, params.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CalendarEvent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update calendar event", err)
		return CalendarEvent{}, fmt.Errorf("failed to update calendar event: %w", err)
	}
	return event, nil
}

const sqlRescheduleCalendarEvent = `
UPDATE calendar_events
SET start_time = $3, end_time = $4, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING ` + calendarEventColumns

// RescheduleCalendarEvent moves an event without touching its other fields.
func (s *Store) RescheduleCalendarEvent(ctx context.Context, userID, eventID uuid.UUID, start, end time.Time) (CalendarEvent, error) {
	var event CalendarEvent
	err := s.db.GetContext(ctx, &event, sqlRescheduleCalendarEvent, eventID, userID, start, end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CalendarEvent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to reschedule calendar event", err)
		return CalendarEvent{}, fmt.Errorf("failed to reschedule calendar event: %w", err)
	}
	return event, nil
}

const sqlDeleteCalendarEvent = `
DELETE FROM calendar_events WHERE id = $1 AND user_id = $2`

func (s *Store) DeleteCalendarEvent(ctx context.Context, userID, eventID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteCalendarEvent, eventID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete calendar event", err)
		return fmt.Errorf("failed to delete calendar event: %w", err)
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

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
