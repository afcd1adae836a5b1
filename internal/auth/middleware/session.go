package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/auth"
	"github.com/folio-site/folio-backend/internal/auth/domain"
)

type SessionValidator interface {
	Validate(ctx context.Context, token string) (*domain.Session, *domain.User, error)
}

// WithCurrentUser resolves the session cookie, if any, and attaches the
// session and user to the context. Requests without a valid session pass
// through anonymously.
func WithCurrentUser(sessions SessionValidator, cookies auth.Cookies) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sess, user, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth] session check failed: %v", err)
			c.Next()
			return
		}
		if sess == nil {
			cookies.ClearSession(c)
			c.Next()
			return
		}

		if sess.Renewed {
			cookies.SetSession(c, token, sess.ExpiresAt)
		}
		auth.SetCurrent(c, sess, user)
		c.Next()
	}
}

// RequireAdmin rejects requests that carry no signed-in user. Only the site
// owner can sign in, so any user is the admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}
		c.Next()
	}
}
