package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	FullName   string    `db:"full_name" json:"full_name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	Street     string    `db:"street" json:"street"`
	PostalCode string    `db:"postal_code" json:"postal_code"`
	City       string    `db:"city" json:"city"`
	Country    string    `db:"country" json:"country"`
	Type       string    `db:"type" json:"type"`
	Details    string    `db:"details" json:"details"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// ContactParams carries the writable fields for create and update.
type ContactParams struct {
	FullName   string
	Email      string
	Phone      string
	Street     string
	PostalCode string
	City       string
	Country    string
	Type       string
	Details    string
}

const contactColumns = `id, user_id, full_name, email, phone, street, postal_code, city, country, type, details, created_at, updated_at`

const sqlCreateContact = `
INSERT INTO contacts (user_id, full_name, email, phone, street, postal_code, city, country, type, details)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + contactColumns

func (s *Store) CreateContact(ctx context.Context, userID uuid.UUID, params ContactParams) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlCreateContact,
		userID, params.FullName, params.Email, params.Phone, params.Street,
		params.PostalCode, params.City, params.Country, params.Type, params.Details)
	if err != nil {
		s.logger.Error(ctx, "failed to create contact", err)
		return Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

const sqlGetContactByID = `
SELECT ` + contactColumns + `
FROM contacts
WHERE id = $1 AND user_id = $2`

func (s *Store) GetContactByID(ctx context.Context, userID, contactID uuid.UUID) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlGetContactByID, contactID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get contact by id", err)
		return Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return contact, nil
}

const sqlListContacts = `
SELECT ` + contactColumns + `
FROM contacts
WHERE user_id = $1
  AND ($2 = '' OR full_name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%' OR phone ILIKE '%' || $2 || '%')
ORDER BY full_name ASC`

// ListContacts returns the user's contacts, filtered by a case-insensitive
// match on name, email or phone when query is not empty.
func (s *Store) ListContacts(ctx context.Context, userID uuid.UUID, query string) ([]Contact, error) {
	contacts := []Contact{}
	err := s.db.SelectContext(ctx, &contacts, sqlListContacts, userID, query)
	if err != nil {
		s.logger.Error(ctx, "failed to list contacts", err)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

const sqlUpdateContact = `
UPDATE contacts
SET full_name = $3, email = $4, phone = $5, street = $6, postal_code = $7,
    city = $8, country = $9, type = $10, details = $11, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING ` + contactColumns

func (s *Store) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, params ContactParams) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlUpdateContact,
		contactID, userID, params.FullName, params.Email, params.Phone, params.Street,
		params.PostalCode, params.City, params.Country, params.Type, params.Details)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update contact", err)
		return Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

const sqlDeleteContact = `
DELETE FROM contacts WHERE id = $1 AND user_id = $2`

func (s *Store) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteContact, contactID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete contact", err)
		return fmt.Errorf("failed to delete contact: %w", err)
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
