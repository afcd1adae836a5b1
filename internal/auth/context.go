package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/auth/domain"
)

const (
	CtxUser    = "auth_user"
	CtxSession = "auth_session"
)

// CurrentUser returns the signed-in user attached by WithCurrentUser, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

func CurrentSession(c *gin.Context) *domain.Session {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil
	}
	s, _ := v.(*domain.Session)
	return s
}

// SetCurrent attaches a validated session and its user to the request.
func SetCurrent(c *gin.Context, s *domain.Session, u *domain.User) {
	c.Set(CtxSession, s)
	c.Set(CtxUser, u)
}
