package processor

import (
	"context"
	"errors"
	"strings"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrInvalidTicketStatus   = errors.New("invalid ticket status")
	ErrInvalidTicketPriority = errors.New("invalid ticket priority")
	ErrContactNotFound       = errors.New("ticket contact not found")
)

// BoardOrder is the column order of the kanban board.
var BoardOrder = []string{
	store.TicketStatusUrgent,
	store.TicketStatusNew,
	store.TicketStatusInProgress,
	store.TicketStatusScheduled,
	store.TicketStatusResolved,
}

var priorities = []string{
	store.TicketPriorityNormal,
	store.TicketPriorityHigh,
	store.TicketPriorityCritical,
}

type TicketProcessor struct {
	store  TicketStore
	logger *observability.Logger
}

func New(store TicketStore, logger *observability.Logger) TicketProcessor {
	return TicketProcessor{
		store:  store,
		logger: logger,
	}
}

// TicketParams represents parameters for creating or updating a ticket. Empty status
// and priority mean the default on create and no change on update.
type TicketParams struct {
	ContactID   *uuid.UUID
	Title       string
	Description string
	Status      string
	Priority    string
}

// BoardColumn is one kanban column
type BoardColumn struct {
	Status  string         `json:"status"`
	Tickets []store.Ticket `json:"tickets"`
}

func (p *TicketProcessor) CreateTicket(ctx context.Context, userID uuid.UUID, params TicketParams) (store.Ticket, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	if params.Status == "" {
		params.Status = store.TicketStatusNew
	}
	if params.Priority == "" {
		params.Priority = store.TicketPriorityNormal
	}
	if err := validate(params.Status, params.Priority); err != nil {
		return store.Ticket{}, err
	}
	contactID, err := p.resolveContact(ctx, userID, params.ContactID)
	if err != nil {
		return store.Ticket{}, err
	}

	ticket, err := p.store.CreateTicket(ctx, userID, store.TicketParams{
		ContactID:   contactID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		Status:      params.Status,
		Priority:    params.Priority,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create ticket", err)
		return store.Ticket{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "ticket_id", Value: ticket.ID.String()}), "ticket created")
	return ticket, nil
}

func (p *TicketProcessor) GetTicket(ctx context.Context, userID, ticketID uuid.UUID) (store.Ticket, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "ticket_id", Value: ticketID.String()},
	)

	ticket, err := p.store.GetTicketByID(ctx, userID, ticketID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Ticket{}, ErrTicketNotFound
		}
		p.logger.Error(ctx, "failed to get ticket", err)
		return store.Ticket{}, err
	}
	return ticket, nil
}

func (p *TicketProcessor) ListTickets(ctx context.Context, userID uuid.UUID) ([]store.Ticket, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	tickets, err := p.store.ListTickets(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list tickets", err)
		return nil, err
	}
	if tickets == nil {
		tickets = []store.Ticket{}
	}
	return tickets, nil
}

// GetBoard groups the user's tickets into kanban columns. Every column is present,
// in BoardOrder, even when empty.
func (p *TicketProcessor) GetBoard(ctx context.Context, userID uuid.UUID) ([]BoardColumn, error) {
	tickets, err := p.ListTickets(ctx, userID)
	if err != nil {
		return nil, err
	}

	columns := make([]BoardColumn, len(BoardOrder))
	index := make(map[string]int, len(BoardOrder))
	for i, status := range BoardOrder {
		columns[i] = BoardColumn{Status: status, Tickets: []store.Ticket{}}
		index[status] = i
	}
	for _, ticket := range tickets {
		i, ok := index[ticket.Status]
		if !ok {
			i = index[store.TicketStatusNew]
		}
		columns[i].Tickets = append(columns[i].Tickets, ticket)
	}
	return columns, nil
}

// UpdateTicket replaces the ticket fields and records one history row per changed field.
func (p *TicketProcessor) UpdateTicket(
	ctx context.Context, userID, ticketID uuid.UUID, params TicketParams) (store.Ticket, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "ticket_id", Value: ticketID.String()},
	)

	current, err := p.GetTicket(ctx, userID, ticketID)
	if err != nil {
		return store.Ticket{}, err
	}

	if params.Status == "" {
		params.Status = current.Status
	}
	if params.Priority == "" {
		params.Priority = current.Priority
	}
	if err := validate(params.Status, params.Priority); err != nil {
		return store.Ticket{}, err
	}
	contactID, err := p.resolveContact(ctx, userID, params.ContactID)
	if err != nil {
		return store.Ticket{}, err
	}

	next := store.TicketParams{
		ContactID:   contactID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		Status:      params.Status,
		Priority:    params.Priority,
	}
	return p.write(ctx, userID, current, next)
}

// UpdateTicketStatus moves a ticket to another kanban column.
func (p *TicketProcessor) UpdateTicketStatus(ctx context.Context, userID, ticketID uuid.UUID, status string) (store.Ticket, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "ticket_id", Value: ticketID.String()},
	)

	if !isValidStatus(status) {
		return store.Ticket{}, ErrInvalidTicketStatus
	}
	current, err := p.GetTicket(ctx, userID, ticketID)
	if err != nil {
		return store.Ticket{}, err
	}

	next := paramsOf(current)
	next.Status = status
	return p.write(ctx, userID, current, next)
}

func (p *TicketProcessor) DeleteTicket(ctx context.Context, userID, ticketID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "ticket_id", Value: ticketID.String()},
	)

	if err := p.store.DeleteTicket(ctx, userID, ticketID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTicketNotFound
		}
		p.logger.Error(ctx, "failed to delete ticket", err)
		return err
	}

	p.logger.Info(ctx, "ticket deleted")
	return nil
}

func (p *TicketProcessor) GetTicketHistory(ctx context.Context, userID, ticketID uuid.UUID) ([]store.TicketHistory, error) {
	if _, err := p.GetTicket(ctx, userID, ticketID); err != nil {
		return nil, err
	}

	history, err := p.store.GetTicketHistory(ctx, ticketID)
	if err != nil {
		p.logger.Error(ctx, "failed to get ticket history", err)
		return nil, err
	}
	if history == nil {
		history = []store.TicketHistory{}
	}
	return history, nil
}

func (p *TicketProcessor) write(
	ctx context.Context, userID uuid.UUID, current store.Ticket, next store.TicketParams) (store.Ticket, error) {
	changes := diff(paramsOf(current), next)
	if len(changes) == 0 {
		return current, nil
	}

	ticket, err := p.store.UpdateTicket(ctx, userID, current.ID, next, changes)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Ticket{}, ErrTicketNotFound
		}
		p.logger.Error(ctx, "failed to update ticket", err)
		return store.Ticket{}, err
	}

	p.logger.Info(ctx, "ticket updated")
	return ticket, nil
}

func (p *TicketProcessor) resolveContact(ctx context.Context, userID uuid.UUID, contactID *uuid.UUID) (uuid.NullUUID, error) {
	if contactID == nil {
		return uuid.NullUUID{}, nil
	}
	_, err := p.store.GetContactByID(ctx, userID, *contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return uuid.NullUUID{}, ErrContactNotFound
		}
		p.logger.Error(ctx, "failed to get ticket contact", err)
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: *contactID, Valid: true}, nil
}

func paramsOf(ticket store.Ticket) store.TicketParams {
	return store.TicketParams{
		ContactID:   ticket.ContactID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
	}
}

// diff lists changed fields in a stable order.
func diff(before, after store.TicketParams) []store.TicketChange {
	var changes []store.TicketChange
	add := func(field, oldValue, newValue string) {
		if oldValue != newValue {
			changes = append(changes, store.TicketChange{Field: field, OldValue: oldValue, NewValue: newValue})
		}
	}
	add("title", before.Title, after.Title)
	add("description", before.Description, after.Description)
	add("status", before.Status, after.Status)
	add("priority", before.Priority, after.Priority)
	add("contact_id", nullUUIDString(before.ContactID), nullUUIDString(after.ContactID))
	return changes
}

func nullUUIDString(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}

func validate(status, priority string) error {
	if !isValidStatus(status) {
		return ErrInvalidTicketStatus
	}
	for _, p := range priorities {
		if p == priority {
			return nil
		}
	}
	return ErrInvalidTicketPriority
}

func isValidStatus(status string) bool {
	for _, s := range BoardOrder {
		if s == status {
			return true
		}
	}
	return false
}
