package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/admin/form"
	"github.com/folio-site/folio-backend/internal/projects/domain"
	"github.com/folio-site/folio-backend/internal/taxonomy"
)

func (h *Handler) createAchievement(c *gin.Context) {
	in, err := readAchievement(form.NewReader(c), false)
	if err != nil {
		invalid(c, err)
		return
	}

	id, err := h.achievements.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fail(c, http.StatusBadRequest, "Project not found")
			return
		}
		internalError(c, "create achievement", err)
		return
	}
	h.written(c, "create achievement", gin.H{"id": id})
}

func (h *Handler) updateAchievement(c *gin.Context) {
	in, err := readAchievement(form.NewReader(c), true)
	if err != nil {
		invalid(c, err)
		return
	}

	if err := h.achievements.Update(c.Request.Context(), in); err != nil {
		if errors.Is(err, domain.ErrAchievementNotFound) {
			fail(c, http.StatusNotFound, "Achievement not found")
			return
		}
		internalError(c, "update achievement", err)
		return
	}
	h.written(c, "update achievement", nil)
}

// dropAchievement serves delete and archive. Achievements have no archived
// state and are removed only with their project, so both validate the id
// and report success without writing.
func (h *Handler) dropAchievement(c *gin.Context) {
	r := form.NewReader(c)
	r.Required("id", "Achievement ID is required")
	if err := r.Err(); err != nil {
		invalid(c, err)
		return
	}
	log.Printf("[admin] %s is a no-op", c.FullPath())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// readAchievement checks fields in form order: id (update only), projectId,
// summary, description, private, tags, order.
func readAchievement(r *form.Reader, update bool) (domain.AchievementInput, error) {
	var in domain.AchievementInput
	if update {
		in.ID = r.ID("id", "Achievement ID is required", "Invalid achievement ID")
	}
	in.ProjectID = r.Required("projectId", "Project ID is required")
	in.Summary = form.NormalizeSummary(r.Required("summary", "Summary is required"))
	in.Description = optionalText(r.Present("description"))
	in.Private = r.Present("private")
	in.Tags = r.List("tags")
	in.Order = r.Order("order")
	if r.Err() == nil {
		r.Check("tags", taxonomy.ValidateTags(in.Tags))
	}
	return in, r.Err()
}
