package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ialynk-server/internal/store"

	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CheckIfEmailExists(ctx context.Context, email string) (bool, error)
	CreateUserOnEmailSignup(ctx context.Context, firstName string, lastName string, email string, hashedPassword string) (store.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (store.EmailAuth, error)
	GetUserByAuthID(ctx context.Context, authID uuid.UUID) (store.AuthenticatedUser, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}
