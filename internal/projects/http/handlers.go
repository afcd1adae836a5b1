package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/auth"
	"github.com/folio-site/folio-backend/internal/projects/domain"
	"github.com/folio-site/folio-backend/internal/projects/service"
)

func (h *Handler) list(c *gin.Context) {
	years, ok := h.years(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": years})
}

// get serves the single-project page, which also renders the full timeline.
func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	years, ok := h.years(c)
	if !ok {
		return
	}

	project, err := service.FindProject(years, id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "project": project, "years": years})
}

// years loads the timeline, hiding private notes from anonymous readers.
func (h *Handler) years(c *gin.Context) ([]domain.ProjectsYear, bool) {
	years, err := h.projector.ProjectsByYear(c.Request.Context())
	if err != nil {
		log.Printf("[projects] timeline failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return nil, false
	}
	if auth.CurrentUser(c) == nil {
		years = domain.WithoutPrivateNotes(years)
	}
	return years, true
}
