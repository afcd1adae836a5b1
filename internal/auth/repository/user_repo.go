package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/folio-site/folio-backend/internal/auth/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByGoogleID retrieves a user by their Google subject
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	const q = `
SELECT id, google_id, username, created_at
FROM users
WHERE google_id = $1;
`
	var u domain.User
	err := r.db.QueryRowContext(ctx, q, googleID).Scan(&u.ID, &u.GoogleID, &u.Username, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and fills in CreatedAt.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	const q = `
INSERT INTO users (id, google_id, username)
VALUES ($1, $2, $3)
RETURNING created_at;
`
	return r.db.QueryRowContext(ctx, q, u.ID, u.GoogleID, u.Username).Scan(&u.CreatedAt)
}
