package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ialynk-server/internal/auth/processor"

	"github.com/google/uuid"
)

type AuthProcessor interface {
	Signup(ctx context.Context, firstName, lastName, email, password string) (processor.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (processor.User, error)
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}
