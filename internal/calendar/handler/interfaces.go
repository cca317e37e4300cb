package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"
	"time"

	"ialynk-server/internal/calendar/processor"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

type CalendarProcessor interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, params processor.EventParams) (store.CalendarEvent, error)
	GetEvent(ctx context.Context, userID, eventID uuid.UUID) (store.CalendarEvent, error)
	ListEvents(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]store.CalendarEvent, error)
	UpdateEvent(ctx context.Context, userID, eventID uuid.UUID, params processor.EventParams) (store.CalendarEvent, error)
	RescheduleEvent(ctx context.Context, userID, eventID uuid.UUID, start, end time.Time) (store.CalendarEvent, error)
	DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) error
}
