package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/applications/domain"
	"github.com/folio-site/folio-backend/internal/applications/service"
	"github.com/folio-site/folio-backend/internal/auth"
	projectsdomain "github.com/folio-site/folio-backend/internal/projects/domain"
)

type PageLookup interface {
	Lookup(ctx context.Context, slug string) (*service.Page, error)
}

// Handler serves per-employer landing pages.
type Handler struct {
	pages PageLookup
}

func New(pages PageLookup) *Handler {
	return &Handler{pages: pages}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/:url", h.get)
}

func (h *Handler) get(c *gin.Context) {
	page, err := h.pages.Lookup(c.Request.Context(), c.Param("url"))
	if errors.Is(err, domain.ErrApplicationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Application not found"})
		return
	}
	if err != nil {
		log.Printf("[apps] lookup slug=%q failed: %v", c.Param("url"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}

	if page.RedirectURL != "" {
		c.Redirect(http.StatusFound, page.RedirectURL)
		return
	}

	years := page.Years
	if auth.CurrentUser(c) == nil {
		years = projectsdomain.WithoutPrivateNotes(years)
	}
	c.JSON(http.StatusOK, gin.H{
		"application": page.Application,
		"years":       years,
		"filters":     page.Filters,
	})
}
