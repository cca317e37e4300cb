package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// StatsStore counts the figures shown on the dashboard
type StatsStore interface {
	GetStats(ctx context.Context, userID uuid.UUID) (store.Stats, error)
}
