package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const sqlSelectUserByID = `
SELECT
    u.id,
    u.first_name,
    u.last_name,
    COALESCE(ea.email, '') AS email,
    u.created_at
FROM users u
LEFT JOIN user_auth ua ON ua.user_id = u.id AND ua.auth_type = 'email'
LEFT JOIN email_auth ea ON ea.auth_id = ua.id
WHERE u.id = $1
LIMIT 1`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlSelectUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
