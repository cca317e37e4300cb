package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidMessages      = errors.New("last message must be a non-empty user message")
	ErrCompletionFailed     = errors.New("ai service: completion failed")
	ErrInvalidDraftResponse = errors.New("ai service: draft response is not valid json")
)

const (
	systemPrompt = "Tu es l'assistant IA officiel d'IALynk. Tu aides les professionnels de l'immobilier " +
		"à gérer leurs biens, locataires et clients avec un ton professionnel et précis."
	emptyReply    = "Aucune réponse générée."
	maxTitleRunes = 60
)

type AssistantProcessor struct {
	store     AssistantStore
	completer Completer
	logger    *observability.Logger
}

func New(store AssistantStore, completer Completer, logger *observability.Logger) AssistantProcessor {
	return AssistantProcessor{
		store:     store,
		completer: completer,
		logger:    logger,
	}
}

// ChatParams is one assistant exchange. Messages is the full history shown in the
// dashboard; only its last user message is stored.
type ChatParams struct {
	ConversationID *uuid.UUID
	Messages       []completion.Message
}

type ChatResult struct {
	Reply          string    `json:"reply"`
	ConversationID uuid.UUID `json:"conversation_id"`
}

// Chat answers the last user message and stores the exchange in the conversation,
// creating it when ConversationID is nil.
func (p *AssistantProcessor) Chat(ctx context.Context, userID uuid.UUID, params ChatParams) (ChatResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	question, err := lastUserMessage(params.Messages)
	if err != nil {
		return ChatResult{}, err
	}

	if params.ConversationID != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: params.ConversationID.String()})
		if _, err := p.store.GetConversationForUser(ctx, *params.ConversationID, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ChatResult{}, ErrConversationNotFound
			}
			p.logger.Error(ctx, "failed to get conversation", err)
			return ChatResult{}, err
		}
	}

	reply, err := p.completer.Complete(ctx, completion.Request{
		SystemPrompt: p.systemPromptFor(ctx, userID),
		Messages:     params.Messages,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to complete assistant chat", err)
		return ChatResult{}, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = emptyReply
	}

	var conversationID uuid.UUID
	if params.ConversationID != nil {
		conversationID = *params.ConversationID
	} else {
		conversation, err := p.store.CreateConversation(ctx, userID, titleFrom(question))
		if err != nil {
			p.logger.Error(ctx, "failed to create conversation", err)
			return ChatResult{}, err
		}
		conversationID = conversation.ID
		ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversationID.String()})
	}

	if _, err := p.store.CreateMessage(ctx, conversationID, store.MessageRoleUser, question); err != nil {
		p.logger.Error(ctx, "failed to save user message", err)
		return ChatResult{}, err
	}
	if _, err := p.store.CreateMessage(ctx, conversationID, store.MessageRoleAssistant, reply); err != nil {
		p.logger.Error(ctx, "failed to save assistant message", err)
		return ChatResult{}, err
	}

	p.logger.Info(ctx, "assistant replied")
	return ChatResult{Reply: reply, ConversationID: conversationID}, nil
}

func (p *AssistantProcessor) ListConversations(ctx context.Context, userID uuid.UUID) ([]store.Conversation, error) {
	conversations, err := p.store.GetAllConversationsByUserID(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list conversations", err)
		return nil, err
	}
	if conversations == nil {
		conversations = []store.Conversation{}
	}
	return conversations, nil
}

func (p *AssistantProcessor) GetConversationMessages(
	ctx context.Context, userID, conversationID uuid.UUID) ([]store.Message, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "conversation_id", Value: conversationID.String()},
	)

	if _, err := p.store.GetConversationForUser(ctx, conversationID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to get conversation", err)
		return nil, err
	}

	messages, err := p.store.GetAllMessagesByConversationID(ctx, conversationID)
	if err != nil {
		p.logger.Error(ctx, "failed to get conversation messages", err)
		return nil, err
	}
	if messages == nil {
		messages = []store.Message{}
	}
	return messages, nil
}

// systemPromptFor falls back to the base prompt when the preferences cannot be
// read, a chat never fails on them.
func (p *AssistantProcessor) systemPromptFor(ctx context.Context, userID uuid.UUID) string {
	prefs, err := p.store.GetAssistantPreferences(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to get assistant preferences, using defaults", err)
		}
		return systemPrompt
	}
	return promptWith(prefs)
}

func promptWith(prefs store.AssistantPreferences) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	switch prefs.Tone {
	case store.AssistantToneFriendly:
		b.WriteString(" Adopte un ton chaleureux et accessible.")
	case store.AssistantToneConcise:
		b.WriteString(" Réponds de façon brève et directe.")
	}
	if prefs.Language == store.AssistantLanguageEnglish {
		b.WriteString(" Réponds en anglais.")
	}
	if prefs.ExpertMode {
		b.WriteString(" L'utilisateur est un professionnel aguerri : emploie le vocabulaire technique sans le vulgariser.")
	}
	if len(prefs.BannedWords) > 0 {
		b.WriteString(" N'emploie jamais les expressions suivantes : ")
		b.WriteString(strings.Join(prefs.BannedWords, ", "))
		b.WriteString(".")
	}
	if instructions := strings.TrimSpace(prefs.CustomInstructions); instructions != "" {
		b.WriteString("\n\nConsignes de l'agence : ")
		b.WriteString(instructions)
	}
	return b.String()
}

func lastUserMessage(messages []completion.Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrInvalidMessages
	}
	for _, m := range messages {
		if m.Role != completion.RoleUser && m.Role != completion.RoleAssistant {
			return "", ErrInvalidMessages
		}
	}
	last := messages[len(messages)-1]
	content := strings.TrimSpace(last.Content)
	if last.Role != completion.RoleUser || content == "" {
		return "", ErrInvalidMessages
	}
	return content, nil
}

func titleFrom(question string) string {
	runes := []rune(strings.Join(strings.Fields(question), " "))
	if len(runes) <= maxTitleRunes {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:maxTitleRunes-1])) + "…"
}
