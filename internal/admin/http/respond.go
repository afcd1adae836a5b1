package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/admin/form"
)

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// invalid answers 400 with the first form violation.
func invalid(c *gin.Context, err error) {
	var ferr *form.Error
	if errors.As(err, &ferr) {
		log.Printf("[admin] rejected path=%s field=%s msg=%q", c.FullPath(), ferr.Field, ferr.Message)
	}
	fail(c, http.StatusBadRequest, err.Error())
}

func internalError(c *gin.Context, op string, err error) {
	log.Printf("[admin] %s failed: %v", op, err)
	fail(c, http.StatusInternalServerError, "internal error")
}

// written records a successful write and drops the cached timeline.
func (h *Handler) written(c *gin.Context, op string, extra gin.H) {
	if err := h.timeline.Invalidate(c.Request.Context()); err != nil {
		log.Printf("[admin] cache invalidate after %s failed: %v", op, err)
	}
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
