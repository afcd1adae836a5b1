package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/folio-site/folio-backend/internal/auth/domain"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s domain.Session) error {
	const q = `INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3);`
	_, err := r.db.ExecContext(ctx, q, s.ID, s.UserID, s.ExpiresAt)
	return err
}

// GetWithUser loads a session together with its owner in one round trip.
func (r *SessionRepository) GetWithUser(ctx context.Context, id string) (*domain.Session, *domain.User, error) {
	const q = `
SELECT s.id, s.user_id, s.expires_at, u.id, u.google_id, u.username, u.created_at
FROM sessions s
INNER JOIN users u ON u.id = s.user_id
WHERE s.id = $1;
`
	var (
		s domain.Session
		u domain.User
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.UserID, &s.ExpiresAt,
		&u.ID, &u.GoogleID, &u.Username, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return &s, &u, nil
}

func (r *SessionRepository) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	const q = `UPDATE sessions SET expires_at = $2 WHERE id = $1;`
	_, err := r.db.ExecContext(ctx, q, id, expiresAt)
	return err
}

// Delete is idempotent; deleting a missing session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM sessions WHERE id = $1;`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
