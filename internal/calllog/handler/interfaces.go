package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

type CallLogProcessor interface {
	ListCalls(ctx context.Context, userID uuid.UUID, limit int) ([]store.Call, error)
	GetCallMessages(ctx context.Context, userID, callID uuid.UUID) ([]store.Message, error)
}
