package service

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/folio-site/folio-backend/config"
	"github.com/folio-site/folio-backend/internal/auth/domain"
)

// Provider is the OAuth side of the login flow.
type Provider interface {
	AuthCodeURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (*domain.Identity, error)
}

type idTokenValidator func(ctx context.Context, raw, audience string) (*idtoken.Payload, error)

// GoogleProvider runs the authorization-code flow with PKCE against Google
// and trusts the subject of the verified ID token.
type GoogleProvider struct {
	oauth    *oauth2.Config
	validate idTokenValidator
}

func NewGoogleProvider(cfg *config.GoogleConfig) *GoogleProvider {
	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "profile"},
		},
		validate: idtoken.Validate,
	}
}

func (p *GoogleProvider) AuthCodeURL(state, verifier string) string {
	return p.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

func (p *GoogleProvider) Exchange(ctx context.Context, code, verifier string) (*domain.Identity, error) {
	tok, err := p.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, domain.ErrMissingIDToken
	}

	payload, err := p.validate(ctx, raw, p.oauth.ClientID)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}

	name, _ := payload.Claims["name"].(string)
	return &domain.Identity{Subject: payload.Subject, Name: name}, nil
}
