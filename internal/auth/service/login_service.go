package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/folio-site/folio-backend/internal/auth/domain"
)

type UserStore interface {
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// LoginService turns a verified identity into a session for the site owner.
type LoginService struct {
	users    UserStore
	sessions *SessionService
	selfID   string
}

func NewLoginService(users UserStore, sessions *SessionService, selfID string) *LoginService {
	return &LoginService{users: users, sessions: sessions, selfID: selfID}
}

// Complete admits only the configured Google subject. The user row is
// created on first login. It returns the cookie token and its session.
func (s *LoginService) Complete(ctx context.Context, id domain.Identity) (string, *domain.Session, error) {
	if s.selfID == "" || id.Subject != s.selfID {
		return "", nil, domain.ErrNotAllowed
	}

	user, err := s.users.GetByGoogleID(ctx, id.Subject)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{ID: uuid.NewString(), GoogleID: id.Subject, Username: id.Name}
		if err := s.users.Create(ctx, user); err != nil {
			return "", nil, fmt.Errorf("create user: %w", err)
		}
		log.Printf("[auth] created user id=%s", user.ID)
	} else if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	token, err := GenerateToken()
	if err != nil {
		return "", nil, err
	}
	sess, err := s.sessions.Create(ctx, token, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}
