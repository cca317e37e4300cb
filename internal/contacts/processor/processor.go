package processor

import (
	"context"
	"errors"
	"strings"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

var ErrContactNotFound = errors.New("contact not found")

const DefaultCountry = "France"

type ContactProcessor struct {
	store  ContactStore
	logger *observability.Logger
}

func New(store ContactStore, logger *observability.Logger) ContactProcessor {
	return ContactProcessor{
		store:  store,
		logger: logger,
	}
}

// ContactParams represents the writable fields of a contact
type ContactParams struct {
	FullName   string
	Email      string
	Phone      string
	Street     string
	PostalCode string
	City       string
	Country    string
	Type       string
	Details    string
}

func (p *ContactProcessor) CreateContact(ctx context.Context, userID uuid.UUID, params ContactParams) (store.Contact, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	contact, err := p.store.CreateContact(ctx, userID, toStoreParams(params))
	if err != nil {
		p.logger.Error(ctx, "failed to create contact", err)
		return store.Contact{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "contact_id", Value: contact.ID.String()}), "contact created")
	return contact, nil
}

func (p *ContactProcessor) GetContact(ctx context.Context, userID, contactID uuid.UUID) (store.Contact, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "contact_id", Value: contactID.String()},
	)

	contact, err := p.store.GetContactByID(ctx, userID, contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Contact{}, ErrContactNotFound
		}
		p.logger.Error(ctx, "failed to get contact", err)
		return store.Contact{}, err
	}
	return contact, nil
}

// ListContacts returns the user's contacts, filtered on name, email or phone when query
// is not blank.
func (p *ContactProcessor) ListContacts(ctx context.Context, userID uuid.UUID, query string) ([]store.Contact, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	contacts, err := p.store.ListContacts(ctx, userID, strings.TrimSpace(query))
	if err != nil {
		p.logger.Error(ctx, "failed to list contacts", err)
		return nil, err
	}
	if contacts == nil {
		contacts = []store.Contact{}
	}
	return contacts, nil
}

func (p *ContactProcessor) UpdateContact(
	ctx context.Context, userID, contactID uuid.UUID, params ContactParams) (store.Contact, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "contact_id", Value: contactID.String()},
	)

	contact, err := p.store.UpdateContact(ctx, userID, contactID, toStoreParams(params))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Contact{}, ErrContactNotFound
		}
		p.logger.Error(ctx, "failed to update contact", err)
		return store.Contact{}, err
	}
	return contact, nil
}

func (p *ContactProcessor) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "contact_id", Value: contactID.String()},
	)

	err := p.store.DeleteContact(ctx, userID, contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactNotFound
		}
		p.logger.Error(ctx, "failed to delete contact", err)
		return err
	}

	p.logger.Info(ctx, "contact deleted")
	return nil
}

func toStoreParams(params ContactParams) store.ContactParams {
	country := strings.TrimSpace(params.Country)
	if country == "" {
		country = DefaultCountry
	}
	return store.ContactParams{
		FullName:   strings.TrimSpace(params.FullName),
		Email:      strings.ToLower(strings.TrimSpace(params.Email)),
		Phone:      strings.TrimSpace(params.Phone),
		Street:     strings.TrimSpace(params.Street),
		PostalCode: strings.TrimSpace(params.PostalCode),
		City:       strings.TrimSpace(params.City),
		Country:    country,
		Type:       strings.TrimSpace(params.Type),
		Details:    params.Details,
	}
}
