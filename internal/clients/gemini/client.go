package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is the Gemini alternative to the OpenAI completion client.
type Client struct {
	client *genai.Client
	model  string
	logger *observability.Logger
}

func NewClient(ctx context.Context, apiKey, model string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: c, model: model, logger: logger}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Complete replays all but the last message as chat history and sends the last one.
func (c *Client) Complete(ctx context.Context, req completion.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "chat_model", Value: c.model})

	model := c.client.GenerativeModel(c.model)
	if strings.TrimSpace(req.SystemPrompt) != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemPrompt)}}
	}
	if req.Temperature != nil {
		model.SetTemperature(float32(*req.Temperature))
	}

	history, prompt := toHistory(req.Messages)
	chat := model.StartChat()
	chat.History = history

	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		c.logger.Error(ctx, "gemini completion failed", err)
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	return responseText(resp), nil
}

// toHistory maps messages to Gemini roles and splits off the final prompt.
func toHistory(messages []completion.Message) ([]*genai.Content, string) {
	if len(messages) == 0 {
		return nil, ""
	}
	history := make([]*genai.Content, 0, len(messages)-1)
	for _, m := range messages[:len(messages)-1] {
		role := "user"
		if m.Role == completion.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return history, messages[len(messages)-1].Content
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
