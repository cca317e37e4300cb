package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// EventStore defines the database operations required by CalendarProcessor
type EventStore interface {
	CreateCalendarEvent(ctx context.Context, userID uuid.UUID, params store.CalendarEventParams) (store.CalendarEvent, error)
	GetCalendarEventByID(ctx context.Context, userID, eventID uuid.UUID) (store.CalendarEvent, error)
	ListCalendarEvents(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]store.CalendarEvent, error)
	UpdateCalendarEvent(ctx context.Context, userID, eventID uuid.UUID, params store.CalendarEventParams) (store.CalendarEvent, error)
	RescheduleCalendarEvent(ctx context.Context, userID, eventID uuid.UUID, start, end time.Time) (store.CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, userID, eventID uuid.UUID) error
}
