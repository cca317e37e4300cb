package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/settings/processor"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// SettingsProcessor defines the interface for settings business logic
type SettingsProcessor interface {
	GetTelephony(ctx context.Context, userID uuid.UUID) (processor.Telephony, error)
	UpdateTelephony(ctx context.Context, userID uuid.UUID, params processor.TelephonyParams) (processor.Telephony, error)
	CheckTelephony(ctx context.Context, userID uuid.UUID) (processor.Telephony, error)
	GetAssistantPreferences(ctx context.Context, userID uuid.UUID) (store.AssistantPreferences, error)
	UpdateAssistantPreferences(ctx context.Context, userID uuid.UUID, params store.AssistantPreferencesParams) (store.AssistantPreferences, error)
	GetAgency(ctx context.Context, userID uuid.UUID) (store.Agency, error)
	UpdateAgency(ctx context.Context, userID uuid.UUID, params store.AgencyParams) (store.Agency, error)
}
