package handler

import (
	"net/http"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/contacts/processor"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor ContactProcessor
	logger    *observability.Logger
}

func New(processor ContactProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ContactRequest is the body of create and update requests
type ContactRequest struct {
	FullName   string `json:"full_name" binding:"required,max=255"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone" binding:"max=50"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Type       string `json:"type"`
	Details    string `json:"details"`
}

func (r ContactRequest) params() processor.ContactParams {
	return processor.ContactParams{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Street:     r.Street,
		PostalCode: r.PostalCode,
		City:       r.City,
		Country:    r.Country,
		Type:       r.Type,
		Details:    r.Details,
	}
}

// HandleListContacts lists the user's contacts, optionally filtered by ?q=
func (h *Handler) HandleListContacts(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	contacts, err := h.processor.ListContacts(ctx, userID, c.Query("q"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *Handler) HandleCreateContact(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	contact, err := h.processor.CreateContact(ctx, userID, req.params())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) HandleGetContact(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	contactID, ok := h.getContactID(c)
	if !ok {
		return
	}

	contact, err := h.processor.GetContact(ctx, userID, contactID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) HandleUpdateContact(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	contactID, ok := h.getContactID(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	contact, err := h.processor.UpdateContact(ctx, userID, contactID, req.params())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) HandleDeleteContact(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	contactID, ok := h.getContactID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteContact(ctx, userID, contactID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
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

func (h *Handler) getContactID(c *gin.Context) (uuid.UUID, bool) {
	contactID, err := uuid.Parse(c.Param("contact_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid contact ID format"))
		return uuid.UUID{}, false
	}
	return contactID, true
}
