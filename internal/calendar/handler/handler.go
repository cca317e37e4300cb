package handler

import (
	"net/http"
	"time"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/calendar/processor"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor CalendarProcessor
	logger    *observability.Logger
}

func New(processor CalendarProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// EventRequest is the body of create and update requests
type EventRequest struct {
	Title        string    `json:"title" binding:"required,max=255"`
	Type         string    `json:"type"`
	Status       string    `json:"status" binding:"max=50"`
	Property     string    `json:"property"`
	ContactName  string    `json:"contact_name" binding:"max=255"`
	ContactEmail string    `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string    `json:"contact_phone" binding:"max=50"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	Notes        string    `json:"notes"`
}

func (r EventRequest) params() processor.EventParams {
	return processor.EventParams{
		Title:        r.Title,
		Type:         r.Type,
		Status:       r.Status,
		Property:     r.Property,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Notes:        r.Notes,
	}
}

// RescheduleRequest is sent when an event is dragged to a new slot
type RescheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// HandleListEvents lists events overlapping the optional RFC 3339 ?from= and ?to= bounds
func (h *Handler) HandleListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	from, ok := parseBound(c, "from")
	if !ok {
		return
	}
	to, ok := parseBound(c, "to")
	if !ok {
		return
	}

	events, err := h.processor.ListEvents(ctx, userID, from, to)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *Handler) HandleCreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	event, err := h.processor.CreateEvent(ctx, userID, req.params())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *Handler) HandleGetEvent(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	eventID, ok := h.getEventID(c)
	if !ok {
		return
	}

	event, err := h.processor.GetEvent(ctx, userID, eventID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) HandleUpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	eventID, ok := h.getEventID(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	event, err := h.processor.UpdateEvent(ctx, userID, eventID, req.params())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) HandleRescheduleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	eventID, ok := h.getEventID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	event, err := h.processor.RescheduleEvent(ctx, userID, eventID, req.StartTime, req.EndTime)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) HandleDeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	eventID, ok := h.getEventID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteEvent(ctx, userID, eventID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseBound(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, name+" must be an RFC 3339 timestamp"))
		return time.Time{}, false
	}
	return t, true
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

func (h *Handler) getEventID(c *gin.Context) (uuid.UUID, bool) {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid event ID format"))
		return uuid.UUID{}, false
	}
	return eventID, true
}
