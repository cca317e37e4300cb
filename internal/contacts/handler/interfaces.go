package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/contacts/processor"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

type ContactProcessor interface {
	CreateContact(ctx context.Context, userID uuid.UUID, params processor.ContactParams) (store.Contact, error)
	GetContact(ctx context.Context, userID, contactID uuid.UUID) (store.Contact, error)
	ListContacts(ctx context.Context, userID uuid.UUID, query string) ([]store.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, params processor.ContactParams) (store.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}
