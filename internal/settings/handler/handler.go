package handler

import (
	"net/http"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/settings/processor"
	"ialynk-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor SettingsProcessor
	logger    *observability.Logger
}

func New(processor SettingsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TelephonyRequest omits a credential to keep the stored one
type TelephonyRequest struct {
	Provider    string  `json:"provider"`
	APIKey      *string `json:"api_key" binding:"omitempty,max=255"`
	Secret      *string `json:"secret" binding:"omitempty,max=255"`
	PhoneNumber string  `json:"phone_number" binding:"max=50"`
}

type AssistantPreferencesRequest struct {
	Tone               string   `json:"tone"`
	Language           string   `json:"language"`
	Voice              string   `json:"voice" binding:"max=50"`
	ExpertMode         bool     `json:"expert_mode"`
	BannedWords        []string `json:"banned_words" binding:"max=100,dive,max=100"`
	CustomInstructions string   `json:"custom_instructions" binding:"max=4000"`
}

type AgencyRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	ContactEmail   string `json:"contact_email" binding:"omitempty,email"`
	PrimaryColor   string `json:"primary_color" binding:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondary_color" binding:"omitempty,hexcolor"`
	LogoURL        string `json:"logo_url" binding:"omitempty,url"`
}

func (h *Handler) HandleGetTelephony(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	telephony, err := h.processor.GetTelephony(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, telephony)
}

func (h *Handler) HandleUpdateTelephony(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req TelephonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	telephony, err := h.processor.UpdateTelephony(ctx, userID, processor.TelephonyParams{
		Provider:    req.Provider,
		APIKey:      req.APIKey,
		Secret:      req.Secret,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, telephony)
}

// HandleCheckTelephony re-evaluates the connection status of the line
func (h *Handler) HandleCheckTelephony(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	telephony, err := h.processor.CheckTelephony(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, telephony)
}

func (h *Handler) HandleGetAssistantPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	prefs, err := h.processor.GetAssistantPreferences(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) HandleUpdateAssistantPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req AssistantPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	prefs, err := h.processor.UpdateAssistantPreferences(ctx, userID, store.AssistantPreferencesParams{
		Tone:               req.Tone,
		Language:           req.Language,
		Voice:              req.Voice,
		ExpertMode:         req.ExpertMode,
		BannedWords:        req.BannedWords,
		CustomInstructions: req.CustomInstructions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) HandleGetAgency(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	agency, err := h.processor.GetAgency(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, agency)
}

func (h *Handler) HandleUpdateAgency(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req AgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	agency, err := h.processor.UpdateAgency(ctx, userID, store.AgencyParams{
		Name:           req.Name,
		ContactEmail:   req.ContactEmail,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		LogoURL:        req.LogoURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, agency)
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return uuid.UUID{}, false
	}
	return userID, true
}
