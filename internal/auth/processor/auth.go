package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrIncorrectPassword  = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrFailedSignup       = errors.New("failed to sign up")
	ErrFailedSignIn       = errors.New("failed to sign in")
	ErrFailedGetUser      = errors.New("failed to get user")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
	ErrExpiredToken       = errors.New("token expired")
)

const tokenTTL = 24 * time.Hour

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AuthStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	AuthType       string           `json:"auth_type"`
}

func (p *AuthProcessor) Signup(
	ctx context.Context, firstName string, lastName string, email string, password string) (User, error) {
	email = normalizeEmail(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	exists, err := p.store.CheckIfEmailExists(ctx, email)
	if err != nil {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return User{}, ErrFailedSignup
	}
	if exists {
		return User{}, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return User{}, ErrFailedSignup
	}

	user, err := p.store.CreateUserOnEmailSignup(ctx, firstName, lastName, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return User{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return User{}, ErrFailedSignup
	}

	p.logger.Info(ctx, "user signed up")
	return toUser(user, email), nil
}

func (p *AuthProcessor) Login(ctx context.Context, email string, password string) (string, error) {
	email = normalizeEmail(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	credentials, err := p.store.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrIncorrectPassword
		}
		p.logger.Error(ctx, "failed to get credentials by email", err)
		return "", ErrFailedSignIn
	}

	err = bcrypt.CompareHashAndPassword([]byte(credentials.HashedPassword), []byte(password))
	if err != nil {
		return "", ErrIncorrectPassword
	}

	user, err := p.store.GetUserByAuthID(ctx, credentials.AuthID)
	if err != nil {
		p.logger.Error(ctx, "failed to get user by auth id", err)
		return "", ErrFailedSignIn
	}

	return p.generateJWTToken(ctx, user)
}

func (p *AuthProcessor) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return User{}, ErrFailedGetUser
	}
	return toUser(user, user.Email), nil
}

func toUser(user store.User, email string) User {
	return User{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     email,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
