package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/voicecall/processor"
)

// EventHandler turns a decoded call event into provider-neutral instructions.
type EventHandler interface {
	HandleEvent(ctx context.Context, event processor.CallEvent) processor.Result
}
