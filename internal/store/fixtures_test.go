package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// CreateUser signs up a user with a unique email.
func (f *Fixtures) CreateUser() User {
	f.t.Helper()
	email := fmt.Sprintf("agent-%s@example.com", uuid.New().String())
	user, err := f.testDB.Store.CreateUserOnEmailSignup(f.ctx, "Test", "User", email, "hashed")
	require.NoError(f.t, err, "failed to create test user")
	return user
}

func (f *Fixtures) CreateContact(userID uuid.UUID, name string) Contact {
	f.t.Helper()
	contact, err := f.testDB.Store.CreateContact(f.ctx, userID, ContactParams{
		FullName: name,
		Email:    "contact@example.com",
		Phone:    "+33600000000",
		Country:  "France",
	})
	require.NoError(f.t, err, "failed to create test contact")
	return contact
}

func (f *Fixtures) CreateTicket(userID uuid.UUID, title string) Ticket {
	f.t.Helper()
	ticket, err := f.testDB.Store.CreateTicket(f.ctx, userID, TicketParams{
		Title:    title,
		Status:   TicketStatusNew,
		Priority: TicketPriorityNormal,
	})
	require.NoError(f.t, err, "failed to create test ticket")
	return ticket
}

func (f *Fixtures) CreateCall(providerCallID string) Call {
	f.t.Helper()
	call, err := f.testDB.Store.UpsertCall(f.ctx, UpsertCallParams{
		Provider:       "telnyx",
		ProviderCallID: providerCallID,
		FromNumber:     "+33600000001",
		ToNumber:       "+33100000002",
		Direction:      "incoming",
		Status:         CallStatusRinging,
	})
	require.NoError(f.t, err, "failed to create test call")
	return call
}

// AssignNumber makes userID the owner of calls placed to number.
func (f *Fixtures) AssignNumber(userID uuid.UUID, number string) TelephonySettings {
	f.t.Helper()
	settings, err := f.testDB.Store.UpsertTelephonySettings(f.ctx, userID, TelephonySettingsParams{
		Provider:    TelephonyProviderTelnyx,
		PhoneNumber: number,
	})
	require.NoError(f.t, err, "failed to assign test number")
	return settings
}

func (f *Fixtures) CreateCalendarEvent(userID uuid.UUID, title string, start time.Time) CalendarEvent {
	f.t.Helper()
	event, err := f.testDB.Store.CreateCalendarEvent(f.ctx, userID, CalendarEventParams{
		Title:     title,
		Type:      CalendarEventTypeVisit,
		Status:    CalendarEventStatusPlanned,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(f.t, err, "failed to create test calendar event")
	return event
}

func (f *Fixtures) CreateInboxMessage(userID uuid.UUID, content string) {
	f.t.Helper()
	_, err := f.testDB.Store.CreateInboxMessageOnce(f.ctx, userID, InboxMessageParams{
		Sender:         "+33600000001",
		Phone:          "+33600000001",
		Content:        content,
		Channel:        InboxChannelCall,
		IdempotencyKey: uuid.NewString(),
	})
	require.NoError(f.t, err, "failed to create test inbox message")
}
