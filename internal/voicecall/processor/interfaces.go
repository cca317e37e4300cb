package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/voicecall/events"
	"ialynk-server/internal/voicecall/session"
)

// AudioFetcher downloads a recording by URL.
type AudioFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Transcriber turns WAV audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Completer produces a reply for a conversation.
type Completer interface {
	Complete(ctx context.Context, req completion.Request) (string, error)
}

// SessionStore tracks call state and recording claims.
type SessionStore interface {
	Start(ctx context.Context, callID, provider string) error
	SetState(ctx context.Context, callID string, state session.State) error
	ClaimRecording(ctx context.Context, callID, recordingID string) (session.Claim, error)
	CompleteRecording(ctx context.Context, callID, recordingID, reply string) error
	ReleaseRecording(ctx context.Context, callID, recordingID string) error
}

// EventPublisher emits call lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event events.CallEvent) error
}
