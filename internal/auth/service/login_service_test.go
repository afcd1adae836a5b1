package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/folio-site/folio-backend/config"
	"github.com/folio-site/folio-backend/internal/auth/domain"
)

type fakeUserStore struct {
	users   map[string]*domain.User
	created int
}

func (f *fakeUserStore) GetByGoogleID(_ context.Context, googleID string) (*domain.User, error) {
	u, ok := f.users[googleID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	f.users[u.GoogleID] = u
	f.created++
	return nil
}

func TestLoginService_Complete_CreatesUserOnce(t *testing.T) {
	users := &fakeUserStore{users: map[string]*domain.User{}}
	sessions := NewSessionService(newFakeSessionStore())
	svc := NewLoginService(users, sessions, "1234")
	ctx := context.Background()

	token, sess, err := svc.Complete(ctx, domain.Identity{Subject: "1234", Name: "Me"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, SessionID(token), sess.ID)
	assert.Equal(t, 1, users.created)
	assert.Equal(t, users.users["1234"].ID, sess.UserID)

	_, _, err = svc.Complete(ctx, domain.Identity{Subject: "1234", Name: "Me"})
	require.NoError(t, err)
	assert.Equal(t, 1, users.created)
}

func TestLoginService_Complete_RejectsOtherAccounts(t *testing.T) {
	users := &fakeUserStore{users: map[string]*domain.User{}}
	svc := NewLoginService(users, NewSessionService(newFakeSessionStore()), "1234")

	_, _, err := svc.Complete(context.Background(), domain.Identity{Subject: "5678"})
	assert.ErrorIs(t, err, domain.ErrNotAllowed)
	assert.Zero(t, users.created)

	open := NewLoginService(users, NewSessionService(newFakeSessionStore()), "")
	_, _, err = open.Complete(context.Background(), domain.Identity{Subject: ""})
	assert.ErrorIs(t, err, domain.ErrNotAllowed)
}

func newTestProvider(t *testing.T, tokenBody map[string]any) *GoogleProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "the-verifier", r.PostForm.Get("code_verifier"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenBody)
	}))
	t.Cleanup(srv.Close)

	p := NewGoogleProvider(&config.GoogleConfig{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://localhost/cb"})
	p.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:   "https://accounts.example/auth",
		TokenURL:  srv.URL,
		AuthStyle: oauth2.AuthStyleInParams,
	}
	return p
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	p := NewGoogleProvider(&config.GoogleConfig{ClientID: "client", RedirectURL: "http://localhost/cb"})

	raw := p.AuthCodeURL("state-1", "verifier-1")
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.Equal(t, oauth2.S256ChallengeFromVerifier("verifier-1"), q.Get("code_challenge"))
	assert.Equal(t, "openid profile", q.Get("scope"))
}

func TestGoogleProvider_Exchange(t *testing.T) {
	p := newTestProvider(t, map[string]any{
		"access_token": "at",
		"token_type":   "Bearer",
		"expires_in":   3600,
		"id_token":     "raw-id-token",
	})
	p.validate = func(_ context.Context, raw, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-id-token", raw)
		assert.Equal(t, "client", audience)
		return &idtoken.Payload{Subject: "1234", Claims: map[string]any{"name": "Me"}}, nil
	}

	id, err := p.Exchange(context.Background(), "the-code", "the-verifier")
	require.NoError(t, err)
	assert.Equal(t, "1234", id.Subject)
	assert.Equal(t, "Me", id.Name)
}

func TestGoogleProvider_Exchange_MissingIDToken(t *testing.T) {
	p := newTestProvider(t, map[string]any{"access_token": "at", "token_type": "Bearer"})

	_, err := p.Exchange(context.Background(), "the-code", "the-verifier")
	assert.ErrorIs(t, err, domain.ErrMissingIDToken)
}

func TestGoogleProvider_Exchange_InvalidIDToken(t *testing.T) {
	p := newTestProvider(t, map[string]any{"access_token": "at", "token_type": "Bearer", "id_token": "bad"})
	p.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("signature mismatch")
	}

	_, err := p.Exchange(context.Background(), "the-code", "the-verifier")
	assert.ErrorContains(t, err, "signature mismatch")
}
