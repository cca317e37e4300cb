package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// SettingsStore defines the database operations required by SettingsProcessor
type SettingsStore interface {
	GetTelephonySettings(ctx context.Context, userID uuid.UUID) (store.TelephonySettings, error)
	UpsertTelephonySettings(ctx context.Context, userID uuid.UUID, params store.TelephonySettingsParams) (store.TelephonySettings, error)
	SetTelephonyStatus(ctx context.Context, userID uuid.UUID, status string) (store.TelephonySettings, error)
	GetAssistantPreferences(ctx context.Context, userID uuid.UUID) (store.AssistantPreferences, error)
	UpsertAssistantPreferences(ctx context.Context, userID uuid.UUID, params store.AssistantPreferencesParams) (store.AssistantPreferences, error)
	GetAgency(ctx context.Context, userID uuid.UUID) (store.Agency, error)
	UpsertAgency(ctx context.Context, userID uuid.UUID, params store.AgencyParams) (store.Agency, error)
}
