package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// TicketStore defines the database operations required by TicketProcessor
type TicketStore interface {
	CreateTicket(ctx context.Context, userID uuid.UUID, params store.TicketParams) (store.Ticket, error)
	GetTicketByID(ctx context.Context, userID, ticketID uuid.UUID) (store.Ticket, error)
	ListTickets(ctx context.Context, userID uuid.UUID) ([]store.Ticket, error)
	UpdateTicket(ctx context.Context, userID, ticketID uuid.UUID, params store.TicketParams, changes []store.TicketChange) (store.Ticket, error)
	DeleteTicket(ctx context.Context, userID, ticketID uuid.UUID) error
	GetTicketHistory(ctx context.Context, ticketID uuid.UUID) ([]store.TicketHistory, error)
	GetContactByID(ctx context.Context, userID, contactID uuid.UUID) (store.Contact, error)
}
