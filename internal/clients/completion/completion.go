// Package completion holds the provider-neutral chat completion request shared by the
// OpenAI and Gemini clients.
package completion

import "errors"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyRequest = errors.New("completion request has no messages")

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single chat completion call.
type Request struct {
	SystemPrompt string
	Messages     []Message
	// Temperature is left to the provider default when nil.
	Temperature *float64
}

// Float returns a pointer to v, for Request.Temperature.
func Float(v float64) *float64 {
	return &v
}

// Validate checks that the request carries at least one message.
func (r Request) Validate() error {
	if len(r.Messages) == 0 {
		return ErrEmptyRequest
	}
	return nil
}
