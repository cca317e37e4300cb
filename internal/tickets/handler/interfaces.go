package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/store"
	"ialynk-server/internal/tickets/processor"

	"github.com/google/uuid"
)

type TicketProcessor interface {
	CreateTicket(ctx context.Context, userID uuid.UUID, params processor.TicketParams) (store.Ticket, error)
	GetTicket(ctx context.Context, userID, ticketID uuid.UUID) (store.Ticket, error)
	ListTickets(ctx context.Context, userID uuid.UUID) ([]store.Ticket, error)
	GetBoard(ctx context.Context, userID uuid.UUID) ([]processor.BoardColumn, error)
	UpdateTicket(ctx context.Context, userID, ticketID uuid.UUID, params processor.TicketParams) (store.Ticket, error)
	UpdateTicketStatus(ctx context.Context, userID, ticketID uuid.UUID, status string) (store.Ticket, error)
	DeleteTicket(ctx context.Context, userID, ticketID uuid.UUID) error
	GetTicketHistory(ctx context.Context, userID, ticketID uuid.UUID) ([]store.TicketHistory, error)
}
