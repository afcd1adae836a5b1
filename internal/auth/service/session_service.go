package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/folio-site/folio-backend/internal/auth/domain"
)

const (
	SessionLifetime = 30 * 24 * time.Hour
	// Sessions closer than this to expiring are extended on use.
	RenewWindow = 15 * 24 * time.Hour
)

type SessionStore interface {
	Create(ctx context.Context, s domain.Session) error
	GetWithUser(ctx context.Context, id string) (*domain.Session, *domain.User, error)
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// SessionService issues and checks opaque session tokens. Only the SHA-256
// of a token is persisted.
type SessionService struct {
	store SessionStore
	now   func() time.Time
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store, now: time.Now}
}

func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateToken returns 160 random bits as lower-case unpadded base32.
func GenerateToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return strings.ToLower(tokenEncoding.EncodeToString(b)), nil
}

// SessionID derives the stored session id from a cookie token.
func SessionID(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Create starts a session for userID under an already generated token.
func (s *SessionService) Create(ctx context.Context, token, userID string) (*domain.Session, error) {
	sess := domain.Session{
		ID:        SessionID(token),
		UserID:    userID,
		ExpiresAt: s.now().Add(SessionLifetime),
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &sess, nil
}

// Validate resolves a cookie token. An unknown or expired token yields nil
// session and user with no error; expired sessions are removed. A session
// inside the renew window gets a fresh expiry and Renewed set.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.Session, *domain.User, error) {
	if token == "" {
		return nil, nil, nil
	}

	sess, user, err := s.store.GetWithUser(ctx, SessionID(token))
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load session: %w", err)
	}

	now := s.now()
	if !now.Before(sess.ExpiresAt) {
		if err := s.store.Delete(ctx, sess.ID); err != nil {
			return nil, nil, fmt.Errorf("delete expired session: %w", err)
		}
		return nil, nil, nil
	}

	if now.After(sess.ExpiresAt.Add(-RenewWindow)) {
		sess.ExpiresAt = now.Add(SessionLifetime)
		if err := s.store.UpdateExpiry(ctx, sess.ID, sess.ExpiresAt); err != nil {
			return nil, nil, fmt.Errorf("renew session: %w", err)
		}
		sess.Renewed = true
	}
	return sess, user, nil
}

// Invalidate ends a session by id.
func (s *SessionService) Invalidate(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
