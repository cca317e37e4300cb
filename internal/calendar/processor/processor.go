package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound    = errors.New("calendar event not found")
	ErrInvalidEventType = errors.New("invalid calendar event type")
	ErrInvalidTimeRange = errors.New("calendar event must end after it starts")
)

var eventTypes = map[string]bool{
	store.CalendarEventTypeVisit:   true,
	store.CalendarEventTypeCall:    true,
	store.CalendarEventTypeMeeting: true,
	store.CalendarEventTypeOther:   true,
}

// CalendarProcessor manages the agency's appointments: visits, calls and meetings.
type CalendarProcessor struct {
	store  EventStore
	logger *observability.Logger
}

func New(store EventStore, logger *observability.Logger) CalendarProcessor {
	return CalendarProcessor{
		store:  store,
		logger: logger,
	}
}

// EventParams represents the writable fields of a calendar event
type EventParams struct {
	Title        string
	Type         string
	Status       string
	Property     string
	ContactName  string
	ContactEmail string
	ContactPhone string
	StartTime    time.Time
	EndTime      time.Time
	Notes        string
}

func (p *CalendarProcessor) CreateEvent(ctx context.Context, userID uuid.UUID, params EventParams) (store.CalendarEvent, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	storeParams, err := toStoreParams(params)
	if err != nil {
		return store.CalendarEvent{}, err
	}

	event, err := p.store.CreateCalendarEvent(ctx, userID, storeParams)
	if err != nil {
		p.logger.Error(ctx, "failed to create calendar event", err)
		return store.CalendarEvent{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "event_id", Value: event.ID.String()}), "calendar event created")
	return event, nil
}

func (p *CalendarProcessor) GetEvent(ctx context.Context, userID, eventID uuid.UUID) (store.CalendarEvent, error) {
	ctx = eventFields(ctx, userID, eventID)

	event, err := p.store.GetCalendarEventByID(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CalendarEvent{}, ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to get calendar event", err)
		return store.CalendarEvent{}, err
	}
	return event, nil
}

// ListEvents returns the events overlapping [from, to), earliest first. Zero bounds
// are open.
func (p *CalendarProcessor) ListEvents(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]store.CalendarEvent, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	if !from.IsZero() && !to.IsZero() && !to.After(from) {
		return nil, ErrInvalidTimeRange
	}

	events, err := p.store.ListCalendarEvents(ctx, userID, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to list calendar events", err)
		return nil, err
	}
	if events == nil {
		events = []store.CalendarEvent{}
	}
	return events, nil
}

func (p *CalendarProcessor) UpdateEvent(
	ctx context.Context, userID, eventID uuid.UUID, params EventParams) (store.CalendarEvent, error) {
	ctx = eventFields(ctx, userID, eventID)

	storeParams, err := toStoreParams(params)
	if err != nil {
		return store.CalendarEvent{}, err
	}

	event, err := p.store.UpdateCalendarEvent(ctx, userID, eventID, storeParams)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CalendarEvent{}, ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to update calendar event", err)
		return store.CalendarEvent{}, err
	}
	return event, nil
}

// RescheduleEvent moves an event, as when it is dragged on the calendar.
func (p *CalendarProcessor) RescheduleEvent(
	ctx context.Context, userID, eventID uuid.UUID, start, end time.Time) (store.CalendarEvent, error) {
	ctx = eventFields(ctx, userID, eventID)

	if !end.After(start) {
		return store.CalendarEvent{}, ErrInvalidTimeRange
	}

	event, err := p.store.RescheduleCalendarEvent(ctx, userID, eventID, start.UTC(), end.UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CalendarEvent{}, ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to reschedule calendar event", err)
		return store.CalendarEvent{}, err
	}

	p.logger.Info(ctx, "calendar event rescheduled")
	return event, nil
}

func (p *CalendarProcessor) DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) error {
	ctx = eventFields(ctx, userID, eventID)

	err := p.store.DeleteCalendarEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to delete calendar event", err)
		return err
	}

	p.logger.Info(ctx, "calendar event deleted")
	return nil
}

func eventFields(ctx context.Context, userID, eventID uuid.UUID) context.Context {
	return observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "event_id", Value: eventID.String()},
	)
}

func toStoreParams(params EventParams) (store.CalendarEventParams, error) {
	eventType := strings.ToLower(strings.TrimSpace(params.Type))
	if eventType == "" {
		eventType = store.CalendarEventTypeVisit
	}
	if !eventTypes[eventType] {
		return store.CalendarEventParams{}, ErrInvalidEventType
	}
	if !params.EndTime.After(params.StartTime) {
		return store.CalendarEventParams{}, ErrInvalidTimeRange
	}
	status := strings.TrimSpace(params.Status)
	if status == "" {
		status = store.CalendarEventStatusPlanned
	}
	return store.CalendarEventParams{
		Title:        strings.TrimSpace(params.Title),
		Type:         eventType,
		Status:       status,
		Property:     strings.TrimSpace(params.Property),
		ContactName:  strings.TrimSpace(params.ContactName),
		ContactEmail: strings.ToLower(strings.TrimSpace(params.ContactEmail)),
		ContactPhone: strings.TrimSpace(params.ContactPhone),
		StartTime:    params.StartTime.UTC(),
		EndTime:      params.EndTime.UTC(),
		Notes:        params.Notes,
	}, nil
}
