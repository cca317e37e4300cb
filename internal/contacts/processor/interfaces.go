package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// ContactStore defines the database operations required by ContactProcessor
type ContactStore interface {
	CreateContact(ctx context.Context, userID uuid.UUID, params store.ContactParams) (store.Contact, error)
	GetContactByID(ctx context.Context, userID, contactID uuid.UUID) (store.Contact, error)
	ListContacts(ctx context.Context, userID uuid.UUID, query string) ([]store.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, params store.ContactParams) (store.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}
