package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie  = "auth-session"
	StateCookie    = "google_oauth_state"
	VerifierCookie = "google_code_verifier"

	// OAuth handshake cookies only need to outlive the consent screen.
	handshakeMaxAge = 10 * 60
)

// Cookies writes the auth cookies with consistent attributes.
type Cookies struct {
	Secure bool
}

func (k Cookies) SetSession(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	k.set(c, SessionCookie, token, maxAge)
}

func (k Cookies) ClearSession(c *gin.Context) {
	k.set(c, SessionCookie, "", -1)
}

func (k Cookies) SetHandshake(c *gin.Context, state, verifier string) {
	k.set(c, StateCookie, state, handshakeMaxAge)
	k.set(c, VerifierCookie, verifier, handshakeMaxAge)
}

func (k Cookies) ClearHandshake(c *gin.Context) {
	k.set(c, StateCookie, "", -1)
	k.set(c, VerifierCookie, "", -1)
}

func (k Cookies) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", k.Secure, true)
}
