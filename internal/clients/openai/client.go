package openai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Config selects the models used by the client.
type Config struct {
	ChatModel          string
	TranscriptionModel string
	// Language is the ISO-639-1 hint passed to transcription, e.g. "fr".
	Language string
}

// Client wraps the OpenAI chat completion and audio transcription endpoints.
type Client struct {
	completions    openai.ChatCompletionService
	transcriptions openai.AudioTranscriptionService
	config         Config
	logger         *observability.Logger
}

// NewClient builds a client once per process; it is safe for concurrent use.
func NewClient(apiKey string, cfg Config, logger *observability.Logger, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = string(openai.ChatModelGPT4oMini)
	}
	if cfg.TranscriptionModel == "" {
		cfg.TranscriptionModel = string(openai.AudioModelWhisper1)
	}

	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(options...)
	return &Client{
		completions:    client.Chat.Completions,
		transcriptions: client.Audio.Transcriptions,
		config:         cfg,
		logger:         logger,
	}, nil
}

// Transcribe sends WAV audio bytes to the transcription endpoint and returns the text verbatim.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "transcription_model", Value: c.config.TranscriptionModel},
		observability.Field{Key: "audio_bytes", Value: len(audio)},
	)

	params := openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(c.config.TranscriptionModel),
		File:  openai.File(bytes.NewReader(audio), "audio.wav", "audio/wav"),
	}
	if c.config.Language != "" {
		params.Language = openai.String(c.config.Language)
	}

	resp, err := c.transcriptions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "openai transcription failed", err)
		return "", fmt.Errorf("openai transcription failed: %w", err)
	}
	return resp.Text, nil
}

// Complete runs one chat completion and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, req completion.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "chat_model", Value: c.config.ChatModel})

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if strings.TrimSpace(req.SystemPrompt) != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case completion.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.config.ChatModel),
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	resp, err := c.completions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "openai chat completion failed", err)
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
