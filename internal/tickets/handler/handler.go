package handler

import (
	"net/http"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/tickets/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor TicketProcessor
	logger    *observability.Logger
}

func New(processor TicketProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TicketRequest represents the HTTP request for creating or replacing a ticket.
// Status and priority are checked by the processor so unknown values map to
// INVALID_STATUS and INVALID_PRIORITY.
type TicketRequest struct {
	ContactID   *string `json:"contact_id,omitempty" binding:"omitempty,uuid"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
}

// UpdateTicketStatusRequest represents a kanban move
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r TicketRequest) params() processor.TicketParams {
	params := processor.TicketParams{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
	if r.ContactID != nil {
		contactID := uuid.MustParse(*r.ContactID)
		params.ContactID = &contactID
	}
	return params
}

func (h *Handler) HandleListTickets(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	tickets, err := h.processor.ListTickets(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// HandleGetBoard returns the tickets grouped by kanban column
func (h *Handler) HandleGetBoard(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	columns, err := h.processor.GetBoard(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (h *Handler) HandleCreateTicket(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ticket, err := h.processor.CreateTicket(ctx, userID, req.params())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (h *Handler) HandleGetTicket(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	ticketID, ok := h.getTicketID(c)
	if !ok {
		return
	}

	ticket, err := h.processor.GetTicket(ctx, userID, ticketID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *Handler) HandleUpdateTicket(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	ticketID, ok := h.getTicketID(c)
	if !ok {
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ticket, err := h.processor.UpdateTicket(ctx, userID, ticketID, req.params())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *Handler) HandleUpdateTicketStatus(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	ticketID, ok := h.getTicketID(c)
	if !ok {
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ticket, err := h.processor.UpdateTicketStatus(ctx, userID, ticketID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *Handler) HandleDeleteTicket(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	ticketID, ok := h.getTicketID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteTicket(ctx, userID, ticketID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleGetTicketHistory(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	ticketID, ok := h.getTicketID(c)
	if !ok {
		return
	}

	history, err := h.processor.GetTicketHistory(ctx, userID, ticketID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
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

func (h *Handler) getTicketID(c *gin.Context) (uuid.UUID, bool) {
	ticketID, err := uuid.Parse(c.Param("ticket_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid ticket ID format"))
		return uuid.UUID{}, false
	}
	return ticketID, true
}
