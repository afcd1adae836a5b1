package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/folio-site/folio-backend/internal/auth"
	"github.com/folio-site/folio-backend/internal/auth/domain"
)

func (h *Handler) loginGoogle(c *gin.Context) {
	if auth.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, h.landingPage)
		return
	}

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()
	h.cookies.SetHandshake(c, state, verifier)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state, verifier))
}

func (h *Handler) callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	storedState, _ := c.Cookie(auth.StateCookie)
	verifier, _ := c.Cookie(auth.VerifierCookie)
	if code == "" || state == "" || storedState == "" || verifier == "" || state != storedState {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid oauth state"})
		return
	}
	h.cookies.ClearHandshake(c)

	identity, err := h.provider.Exchange(c.Request.Context(), code, verifier)
	if err != nil {
		log.Printf("[auth] code exchange failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid authorization code"})
		return
	}

	token, sess, err := h.login.Complete(c.Request.Context(), *identity)
	if errors.Is(err, domain.ErrNotAllowed) {
		log.Printf("[auth] rejected sign-in subject=%s", identity.Subject)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		log.Printf("[auth] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "login failed"})
		return
	}

	h.cookies.SetSession(c, token, sess.ExpiresAt)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) logout(c *gin.Context) {
	if sess := auth.CurrentSession(c); sess != nil {
		if err := h.sessions.Invalidate(c.Request.Context(), sess.ID); err != nil {
			log.Printf("[auth] invalidate session failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "logout failed"})
			return
		}
	}
	h.cookies.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
