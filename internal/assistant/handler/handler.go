package handler

import (
	"net/http"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/assistant/processor"
	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor AssistantProcessor
	logger    *observability.Logger
}

func New(processor AssistantProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	ConversationID *string       `json:"conversation_id" binding:"omitempty,uuid"`
	Messages       []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

type ReplyDraftsRequest struct {
	MessageContent string         `json:"message_content" binding:"required"`
	Contact        map[string]any `json:"contact"`
}

func (h *Handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.ChatParams{Messages: make([]completion.Message, 0, len(req.Messages))}
	if req.ConversationID != nil {
		conversationID := uuid.MustParse(*req.ConversationID)
		params.ConversationID = &conversationID
	}
	for _, m := range req.Messages {
		params.Messages = append(params.Messages, completion.Message{Role: m.Role, Content: m.Content})
	}

	result, err := h.processor.Chat(ctx, userID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	conversations, err := h.processor.ListConversations(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

func (h *Handler) HandleGetConversationMessages(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	conversationID, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid conversation ID format"))
		return
	}

	messages, err := h.processor.GetConversationMessages(ctx, userID, conversationID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// HandleReplyDrafts suggests three replies to a message received from a contact
func (h *Handler) HandleReplyDrafts(c *gin.Context) {
	ctx := c.Request.Context()

	var req ReplyDraftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	drafts, err := h.processor.DraftReplies(ctx, req.MessageContent, req.Contact)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, drafts)
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
