package handler

import (
	"net/http"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor InboxProcessor
	logger    *observability.Logger
}

func New(processor InboxProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type ReadStateRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// HandleListMessages lists the inbox. ?filter= is recent, oldest, unread or read; ?q= searches.
func (h *Handler) HandleListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	messages, err := h.processor.ListMessages(ctx, userID, c.Query("filter"), c.Query("q"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// HandleOpenMessage returns a message and marks it read
func (h *Handler) HandleOpenMessage(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	messageID, ok := h.getMessageID(c)
	if !ok {
		return
	}

	message, err := h.processor.OpenMessage(ctx, userID, messageID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *Handler) HandleSetReadState(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	messageID, ok := h.getMessageID(c)
	if !ok {
		return
	}

	var req ReadStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	message, err := h.processor.SetRead(ctx, userID, messageID, *req.IsRead)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
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

func (h *Handler) getMessageID(c *gin.Context) (uuid.UUID, bool) {
	messageID, err := uuid.Parse(c.Param("message_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid message ID format"))
		return uuid.UUID{}, false
	}
	return messageID, true
}
