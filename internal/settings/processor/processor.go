// Package processor holds the per-user settings: the telephony line the voice
// assistant answers on, how the assistant speaks, and the agency profile.
package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidProvider    = errors.New("invalid telephony provider")
	ErrPhoneNumberTaken   = errors.New("phone number already used by another account")
	ErrInvalidPreferences = errors.New("invalid assistant preferences")
)

const (
	defaultVoice          = "default"
	defaultPrimaryColor   = "#1E40AF"
	defaultSecondaryColor = "#1E3A8A"
)

var (
	providers = map[string]bool{
		store.TelephonyProviderTelnyx: true,
		store.TelephonyProviderTwilio: true,
		store.TelephonyProviderCustom: true,
	}
	tones = map[string]bool{
		store.AssistantTonePro:      true,
		store.AssistantToneFriendly: true,
		store.AssistantToneConcise:  true,
	}
	languages = map[string]bool{
		store.AssistantLanguageFrench:  true,
		store.AssistantLanguageEnglish: true,
	}
)

// Telephony is what clients see of the telephony settings. Credentials never
// leave the server, only whether they are set.
type Telephony struct {
	Provider    string    `json:"provider"`
	PhoneNumber string    `json:"phone_number"`
	Status      string    `json:"status"`
	HasAPIKey   bool      `json:"has_api_key"`
	HasSecret   bool      `json:"has_secret"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var defaultTelephony = Telephony{
	Provider: store.TelephonyProviderTelnyx,
	Status:   store.TelephonyStatusDisconnected,
}

// TelephonyParams leaves a credential unchanged when it is nil.
type TelephonyParams struct {
	Provider    string
	APIKey      *string
	Secret      *string
	PhoneNumber string
}

type SettingsProcessor struct {
	store  SettingsStore
	logger *observability.Logger
}

func New(store SettingsStore, logger *observability.Logger) SettingsProcessor {
	return SettingsProcessor{
		store:  store,
		logger: logger,
	}
}

// GetTelephony returns a disconnected default line when nothing was saved yet.
func (p *SettingsProcessor) GetTelephony(ctx context.Context, userID uuid.UUID) (Telephony, error) {
	ctx = userFields(ctx, userID)

	settings, err := p.store.GetTelephonySettings(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return defaultTelephony, nil
		}
		p.logger.Error(ctx, "failed to get telephony settings", err)
		return Telephony{}, err
	}
	return toTelephony(settings), nil
}

func (p *SettingsProcessor) UpdateTelephony(ctx context.Context, userID uuid.UUID, params TelephonyParams) (Telephony, error) {
	ctx = userFields(ctx, userID)

	provider := strings.ToLower(strings.TrimSpace(params.Provider))
	if provider == "" {
		provider = store.TelephonyProviderTelnyx
	}
	if !providers[provider] {
		return Telephony{}, ErrInvalidProvider
	}

	settings, err := p.store.UpsertTelephonySettings(ctx, userID, store.TelephonySettingsParams{
		Provider:    provider,
		APIKey:      trimmed(params.APIKey),
		Secret:      trimmed(params.Secret),
		PhoneNumber: params.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			p.logger.Warn(ctx, "phone number already assigned to another user")
			return Telephony{}, ErrPhoneNumberTaken
		}
		p.logger.Error(ctx, "failed to update telephony settings", err)
		return Telephony{}, err
	}

	p.logger.Info(ctx, "telephony settings updated")
	return toTelephony(settings), nil
}

// CheckTelephony marks the line connected when it has a number and both
// credentials, and disconnected otherwise.
func (p *SettingsProcessor) CheckTelephony(ctx context.Context, userID uuid.UUID) (Telephony, error) {
	ctx = userFields(ctx, userID)

	settings, err := p.store.GetTelephonySettings(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return defaultTelephony, nil
		}
		p.logger.Error(ctx, "failed to get telephony settings", err)
		return Telephony{}, err
	}

	status := store.TelephonyStatusDisconnected
	if settings.APIKey != "" && settings.Secret != "" && settings.PhoneNumber != "" {
		status = store.TelephonyStatusConnected
	}
	if status == settings.Status {
		return toTelephony(settings), nil
	}

	settings, err = p.store.SetTelephonyStatus(ctx, userID, status)
	if err != nil {
		p.logger.Error(ctx, "failed to set telephony status", err)
		return Telephony{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "status", Value: status}), "telephony connection tested")
	return toTelephony(settings), nil
}

func (p *SettingsProcessor) GetAssistantPreferences(ctx context.Context, userID uuid.UUID) (store.AssistantPreferences, error) {
	ctx = userFields(ctx, userID)

	prefs, err := p.store.GetAssistantPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.DefaultAssistantPreferences(userID), nil
		}
		p.logger.Error(ctx, "failed to get assistant preferences", err)
		return store.AssistantPreferences{}, err
	}
	return prefs, nil
}

// UpdateAssistantPreferences validates tone and language, defaults empty ones,
// and trims and deduplicates banned words case-insensitively.
func (p *SettingsProcessor) UpdateAssistantPreferences(ctx context.Context, userID uuid.UUID, params store.AssistantPreferencesParams) (store.AssistantPreferences, error) {
	ctx = userFields(ctx, userID)

	params.Tone = strings.ToLower(strings.TrimSpace(params.Tone))
	if params.Tone == "" {
		params.Tone = store.AssistantTonePro
	}
	params.Language = strings.ToLower(strings.TrimSpace(params.Language))
	if params.Language == "" {
		params.Language = store.AssistantLanguageFrench
	}
	if !tones[params.Tone] || !languages[params.Language] {
		return store.AssistantPreferences{}, ErrInvalidPreferences
	}
	params.Voice = strings.TrimSpace(params.Voice)
	if params.Voice == "" {
		params.Voice = defaultVoice
	}
	params.BannedWords = uniqueWords(params.BannedWords)
	params.CustomInstructions = strings.TrimSpace(params.CustomInstructions)

	prefs, err := p.store.UpsertAssistantPreferences(ctx, userID, params)
	if err != nil {
		p.logger.Error(ctx, "failed to update assistant preferences", err)
		return store.AssistantPreferences{}, err
	}

	p.logger.Info(ctx, "assistant preferences updated")
	return prefs, nil
}

// GetAgency returns an unnamed profile with the default colors when nothing
// was saved yet.
func (p *SettingsProcessor) GetAgency(ctx context.Context, userID uuid.UUID) (store.Agency, error) {
	ctx = userFields(ctx, userID)

	agency, err := p.store.GetAgency(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Agency{
				UserID:         userID,
				PrimaryColor:   defaultPrimaryColor,
				SecondaryColor: defaultSecondaryColor,
			}, nil
		}
		p.logger.Error(ctx, "failed to get agency", err)
		return store.Agency{}, err
	}
	return agency, nil
}

func (p *SettingsProcessor) UpdateAgency(ctx context.Context, userID uuid.UUID, params store.AgencyParams) (store.Agency, error) {
	ctx = userFields(ctx, userID)

	params.Name = strings.TrimSpace(params.Name)
	params.ContactEmail = strings.ToLower(strings.TrimSpace(params.ContactEmail))
	params.PrimaryColor = strings.ToUpper(strings.TrimSpace(params.PrimaryColor))
	if params.PrimaryColor == "" {
		params.PrimaryColor = defaultPrimaryColor
	}
	params.SecondaryColor = strings.ToUpper(strings.TrimSpace(params.SecondaryColor))
	if params.SecondaryColor == "" {
		params.SecondaryColor = defaultSecondaryColor
	}
	params.LogoURL = strings.TrimSpace(params.LogoURL)

	agency, err := p.store.UpsertAgency(ctx, userID, params)
	if err != nil {
		p.logger.Error(ctx, "failed to update agency", err)
		return store.Agency{}, err
	}

	p.logger.Info(ctx, "agency profile updated")
	return agency, nil
}

func toTelephony(settings store.TelephonySettings) Telephony {
	return Telephony{
		Provider:    settings.Provider,
		PhoneNumber: settings.PhoneNumber,
		Status:      settings.Status,
		HasAPIKey:   settings.APIKey != "",
		HasSecret:   settings.Secret != "",
		UpdatedAt:   settings.UpdatedAt,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func uniqueWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		key := strings.ToLower(w)
		if w == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}

func userFields(ctx context.Context, userID uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})
}
