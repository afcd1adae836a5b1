package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-site/folio-backend/internal/auth"
	"github.com/folio-site/folio-backend/internal/auth/domain"
)

type fakeProvider struct {
	identity *domain.Identity
	err      error
	verifier string
}

func (f *fakeProvider) AuthCodeURL(state, verifier string) string {
	return "https://accounts.example/auth?state=" + state
}

func (f *fakeProvider) Exchange(_ context.Context, code, verifier string) (*domain.Identity, error) {
	f.verifier = verifier
	return f.identity, f.err
}

type fakeLogin struct {
	err error
}

func (f *fakeLogin) Complete(_ context.Context, id domain.Identity) (string, *domain.Session, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return "new-token", &domain.Session{ID: "sid", UserID: "u-1", ExpiresAt: time.Now().Add(24 * time.Hour)}, nil
}

type fakeInvalidator struct {
	ids []string
}

func (f *fakeInvalidator) Invalidate(_ context.Context, id string) error {
	f.ids = append(f.ids, id)
	return nil
}

type fixture struct {
	router   *gin.Engine
	provider *fakeProvider
	login    *fakeLogin
	sessions *fakeInvalidator
	user     *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		provider: &fakeProvider{identity: &domain.Identity{Subject: "1234", Name: "Me"}},
		login:    &fakeLogin{},
		sessions: &fakeInvalidator{},
	}
	h := New(f.provider, f.login, f.sessions, auth.Cookies{}, "/admin/projects")

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if f.user != nil {
			auth.SetCurrent(c, &domain.Session{ID: "sid"}, f.user)
		}
		c.Next()
	})
	h.RegisterLogin(r)
	h.RegisterAPI(r.Group("/api/v1"))
	f.router = r
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func callbackRequest(state, cookieState string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/login/google/callback?code=c&state="+state, nil)
	req.AddCookie(&http.Cookie{Name: auth.StateCookie, Value: cookieState})
	req.AddCookie(&http.Cookie{Name: auth.VerifierCookie, Value: "v"})
	return req
}

func TestLoginGoogle_RedirectsToProvider(t *testing.T) {
	f := newFixture(t)
	w := f.do(httptest.NewRequest(http.MethodGet, "/login/google", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	state := cookieNamed(w, auth.StateCookie)
	verifier := cookieNamed(w, auth.VerifierCookie)
	require.NotNil(t, state)
	require.NotNil(t, verifier)
	assert.Equal(t, 600, state.MaxAge)
	assert.True(t, state.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, state.SameSite)
	assert.Equal(t, "https://accounts.example/auth?state="+state.Value, w.Header().Get("Location"))
}

func TestLoginGoogle_AlreadySignedIn(t *testing.T) {
	f := newFixture(t)
	f.user = &domain.User{ID: "u-1"}
	w := f.do(httptest.NewRequest(http.MethodGet, "/login/google", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/projects", w.Header().Get("Location"))
}

func TestCallback_SetsSessionCookie(t *testing.T) {
	f := newFixture(t)
	w := f.do(callbackRequest("s1", "s1"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "v", f.provider.verifier)
	sess := cookieNamed(w, auth.SessionCookie)
	require.NotNil(t, sess)
	assert.Equal(t, "new-token", sess.Value)
}

func TestCallback_StateMismatch(t *testing.T) {
	f := newFixture(t)
	w := f.do(callbackRequest("s1", "other"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.provider.verifier)
}

func TestCallback_ExchangeFails(t *testing.T) {
	f := newFixture(t)
	f.provider.err = errors.New("bad code")
	w := f.do(callbackRequest("s1", "s1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, cookieNamed(w, auth.SessionCookie))
}

func TestCallback_ForeignAccountGoesHome(t *testing.T) {
	f := newFixture(t)
	f.login.err = domain.ErrNotAllowed
	w := f.do(callbackRequest("s1", "s1"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Nil(t, cookieNamed(w, auth.SessionCookie))
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.user = &domain.User{ID: "u-1"}
	w := f.do(httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader("")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sid"}, f.sessions.ids)
	c := cookieNamed(w, auth.SessionCookie)
	require.NotNil(t, c)
	assert.Less(t, c.MaxAge, 0)
}

func TestMe(t *testing.T) {
	f := newFixture(t)
	w := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.user = &domain.User{ID: "u-1", GoogleID: "1234", Username: "Me"}
	w = f.do(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"Me"`)
}
