package http

import (
	"context"

	"github.com/folio-site/folio-backend/internal/auth"
	"github.com/folio-site/folio-backend/internal/auth/domain"
	"github.com/folio-site/folio-backend/internal/auth/service"
)

type LoginCompleter interface {
	Complete(ctx context.Context, id domain.Identity) (string, *domain.Session, error)
}

type SessionInvalidator interface {
	Invalidate(ctx context.Context, sessionID string) error
}

// Handler serves the Google sign-in flow and the session endpoints.
type Handler struct {
	provider    service.Provider
	login       LoginCompleter
	sessions    SessionInvalidator
	cookies     auth.Cookies
	landingPage string
}

func New(provider service.Provider, login LoginCompleter, sessions SessionInvalidator, cookies auth.Cookies, landingPage string) *Handler {
	return &Handler{
		provider:    provider,
		login:       login,
		sessions:    sessions,
		cookies:     cookies,
		landingPage: landingPage,
	}
}
