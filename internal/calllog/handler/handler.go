package handler

import (
	"net/http"
	"strconv"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor CallLogProcessor
	logger    *observability.Logger
}

func New(processor CallLogProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListCalls lists the most recent calls, ?limit= defaults to 20 and is capped at 100
func (h *Handler) HandleListCalls(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	calls, err := h.processor.ListCalls(ctx, userID, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calls": calls})
}

func (h *Handler) HandleGetCallMessages(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	callID, err := uuid.Parse(c.Param("call_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid call ID format"))
		return
	}

	messages, err := h.processor.GetCallMessages(ctx, userID, callID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
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
