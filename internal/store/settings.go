package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TelephonySettings struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Provider    string    `db:"provider" json:"provider"`
	APIKey      string    `db:"api_key" json:"-"`
	Secret      string    `db:"secret" json:"-"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	Status      string    `db:"status" json:"status"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TelephonySettingsParams leaves a stored credential untouched when the field is nil.
type TelephonySettingsParams struct {
	Provider    string
	APIKey      *string
	Secret      *string
	PhoneNumber string
}

const telephonySettingsColumns = `id, user_id, provider, api_key, secret, phone_number, status, updated_at`

const sqlGetTelephonySettings = `
SELECT ` + telephonySettingsColumns + `
FROM telephony_settings
WHERE user_id = $1`

func (s *Store) GetTelephonySettings(ctx context.Context, userID uuid.UUID) (TelephonySettings, error) {
	var settings TelephonySettings
	err := s.db.GetContext(ctx, &settings, sqlGetTelephonySettings, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TelephonySettings{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get telephony settings", err)
		return TelephonySettings{}, fmt.Errorf("failed to get telephony settings: %w", err)
	}
	return settings, nil
}

// Changing credentials or the number invalidates a previous connection test.
const sqlUpsertTelephonySettings = `
INSERT INTO telephony_settings (user_id, provider, api_key, secret, phone_number)
VALUES ($1, $2, COALESCE($3, ''), COALESCE($4, ''), $5)
ON CONFLICT (user_id) DO UPDATE SET
    provider     = EXCLUDED.provider,
    api_key      = COALESCE($3, telephony_settings.api_key),
    secret       = COALESCE($4, telephony_settings.secret),
    phone_number = EXCLUDED.phone_number,
    status       = CASE
                       WHEN $3 IS NULL AND $4 IS NULL AND telephony_settings.phone_number = EXCLUDED.phone_number
                       THEN telephony_settings.status
                       ELSE 'disconnected'
                   END,
    updated_at   = NOW()
RETURNING ` + telephonySettingsColumns

// UpsertTelephonySettings stores the phone number normalized. A number already
// owned by another user yields ErrAlreadyExists.
func (s *Store) UpsertTelephonySettings(ctx context.Context, userID uuid.UUID, params TelephonySettingsParams) (TelephonySettings, error) {
	var settings TelephonySettings
	err := s.db.GetContext(ctx, &settings, sqlUpsertTelephonySettings,
		userID, params.Provider, params.APIKey, params.Secret, NormalizePhoneNumber(params.PhoneNumber))
	if err != nil {
		if isUniqueViolation(err) {
			return TelephonySettings{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to upsert telephony settings", err)
		return TelephonySettings{}, fmt.Errorf("failed to upsert telephony settings: %w", err)
	}
	return settings, nil
}

const sqlSetTelephonyStatus = `
UPDATE telephony_settings
SET status = $2, updated_at = NOW()
WHERE user_id = $1
RETURNING ` + telephonySettingsColumns

func (s *Store) SetTelephonyStatus(ctx context.Context, userID uuid.UUID, status string) (TelephonySettings, error) {
	var settings TelephonySettings
	err := s.db.GetContext(ctx, &settings, sqlSetTelephonyStatus, userID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TelephonySettings{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set telephony status", err)
		return TelephonySettings{}, fmt.Errorf("failed to set telephony status: %w", err)
	}
	return settings, nil
}

// StringList is a list of strings stored as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return json.Unmarshal(data, (*[]string)(l))
}

type AssistantPreferences struct {
	UserID             uuid.UUID  `db:"user_id" json:"user_id"`
	Tone               string     `db:"tone" json:"tone"`
	Language           string     `db:"language" json:"language"`
	Voice              string     `db:"voice" json:"voice"`
	ExpertMode         bool       `db:"expert_mode" json:"expert_mode"`
	BannedWords        StringList `db:"banned_words" json:"banned_words"`
	CustomInstructions string     `db:"custom_instructions" json:"custom_instructions"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type AssistantPreferencesParams struct {
	Tone               string
	Language           string
	Voice              string
	ExpertMode         bool
	BannedWords        []string
	CustomInstructions string
}

// DefaultAssistantPreferences is what a user gets before saving any preference.
func DefaultAssistantPreferences(userID uuid.UUID) AssistantPreferences {
	return AssistantPreferences{
		UserID:      userID,
		Tone:        AssistantTonePro,
		Language:    AssistantLanguageFrench,
		Voice:       "default",
		BannedWords: StringList{},
	}
}

const assistantPreferencesColumns = `user_id, tone, language, voice, expert_mode, banned_words, custom_instructions, updated_at`

const sqlGetAssistantPreferences = `
SELECT ` + assistantPreferencesColumns + `
FROM assistant_preferences
WHERE user_id = $1`

func (s *Store) GetAssistantPreferences(ctx context.Context, userID uuid.UUID) (AssistantPreferences, error) {
	var prefs AssistantPreferences
	err := s.db.GetContext(ctx, &prefs, sqlGetAssistantPreferences, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AssistantPreferences{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get assistant preferences", err)
		return AssistantPreferences{}, fmt.Errorf("failed to get assistant preferences: %w", err)
	}
	return prefs, nil
}

const sqlUpsertAssistantPreferences = `
INSERT INTO assistant_preferences (user_id, tone, language, voice, expert_mode, banned_words, custom_instructions)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
ON CONFLICT (user_id) DO UPDATE SET
    tone                = EXCLUDED.tone,
    language            = EXCLUDED.language,
    voice               = EXCLUDED.voice,
    expert_mode         = EXCLUDED.expert_mode,
    banned_words        = EXCLUDED.banned_words,
    custom_instructions = EXCLUDED.custom_instructions,
    updated_at          = NOW()
RETURNING ` + assistantPreferencesColumns

func (s *Store) UpsertAssistantPreferences(ctx context.Context, userID uuid.UUID, params AssistantPreferencesParams) (AssistantPreferences, error) {
	var prefs AssistantPreferences
	err := s.db.GetContext(ctx, &prefs, sqlUpsertAssistantPreferences,
		userID, params.Tone, params.Language, params.Voice, params.ExpertMode,
		StringList(params.BannedWords), params.CustomInstructions)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert assistant preferences", err)
		return AssistantPreferences{}, fmt.Errorf("failed to upsert assistant preferences: %w", err)
	}
	return prefs, nil
}

type Agency struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	Name           string    `db:"name" json:"name"`
	ContactEmail   string    `db:"contact_email" json:"contact_email"`
	PrimaryColor   string    `db:"primary_color" json:"primary_color"`
	SecondaryColor string    `db:"secondary_color" json:"secondary_color"`
	LogoURL        string    `db:"logo_url" json:"logo_url"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type AgencyParams struct {
	Name           string
	ContactEmail   string
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
}

const agencyColumns = `id, user_id, name, contact_email, primary_color, secondary_color, logo_url, updated_at`

const sqlGetAgency = `
SELECT ` + agencyColumns + `
FROM agencies
WHERE user_id = $1`

func (s *Store) GetAgency(ctx context.Context, userID uuid.UUID) (Agency, error) {
	var agency Agency
	err := s.db.GetContext(ctx, &agency, sqlGetAgency, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agency{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get agency", err)
		return Agency{}, fmt.Errorf("failed to get agency: %w", err)
	}
	return agency, nil
}

const sqlUpsertAgency = `
INSERT INTO agencies (user_id, name, contact_email, primary_color, secondary_color, logo_url)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
    name            = EXCLUDED.name,
    contact_email   = EXCLUDED.contact_email,
    primary_color   = EXCLUDED.primary_color,
    secondary_color = EXCLUDED.secondary_color,
    logo_url        = EXCLUDED.logo_url,
    updated_at      = NOW()
RETURNING ` + agencyColumns

func (s *Store) UpsertAgency(ctx context.Context, userID uuid.UUID, params AgencyParams) (Agency, error) {
	var agency Agency
	err := s.db.GetContext(ctx, &agency, sqlUpsertAgency,
		userID, params.Name, params.ContactEmail, params.PrimaryColor, params.SecondaryColor, params.LogoURL)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert agency", err)
		return Agency{}, fmt.Errorf("failed to upsert agency: %w", err)
	}
	return agency, nil
}
