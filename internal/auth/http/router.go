package http

import "github.com/gin-gonic/gin"

// RegisterLogin attaches the OAuth routes. Extra handlers, such as a rate
// limiter, run before the two sign-in steps.
func (h *Handler) RegisterLogin(r gin.IRoutes, extra ...gin.HandlerFunc) {
	r.GET("/login/google", chain(extra, h.loginGoogle)...)
	r.GET("/login/google/callback", chain(extra, h.callback)...)
	r.POST("/logout", h.logout)
}

// RegisterAPI attaches the session endpoints under the API group.
func (h *Handler) RegisterAPI(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

func chain(extra []gin.HandlerFunc, last gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(extra)+1)
	out = append(out, extra...)
	return append(out, last)
}
