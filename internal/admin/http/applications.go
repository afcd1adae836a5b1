package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/admin/form"
	appdomain "github.com/folio-site/folio-backend/internal/applications/domain"
	"github.com/folio-site/folio-backend/internal/taxonomy"
)

// listApplications returns everything the application editor needs in one
// response.
func (h *Handler) listApplications(c *gin.Context) {
	ctx := c.Request.Context()

	apps, err := h.applications.List(ctx)
	if err != nil {
		internalError(c, "list applications", err)
		return
	}
	achievements, err := h.achievements.List(ctx)
	if err != nil {
		internalError(c, "list achievements", err)
		return
	}
	projects, err := h.projects.List(ctx)
	if err != nil {
		internalError(c, "list projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"achievements": achievements,
		"projects":     projects,
	})
}

func (h *Handler) createApplication(c *gin.Context) {
	in, err := readApplication(form.NewReader(c), false)
	if err != nil {
		invalid(c, err)
		return
	}

	id, err := h.applications.Create(c.Request.Context(), in)
	if err != nil {
		h.applicationWriteFailed(c, "create application", err)
		return
	}
	h.written(c, "create application", gin.H{"id": id})
}

func (h *Handler) updateApplication(c *gin.Context) {
	in, err := readApplication(form.NewReader(c), true)
	if err != nil {
		invalid(c, err)
		return
	}

	if err := h.applications.Update(c.Request.Context(), in); err != nil {
		h.applicationWriteFailed(c, "update application", err)
		return
	}
	h.written(c, "update application", nil)
}

func (h *Handler) archiveApplication(c *gin.Context) {
	id, ok := readApplicationID(c)
	if !ok {
		return
	}
	if err := h.applications.Archive(c.Request.Context(), id); err != nil {
		h.applicationWriteFailed(c, "archive application", err)
		return
	}
	h.written(c, "archive application", nil)
}

func (h *Handler) deleteApplication(c *gin.Context) {
	id, ok := readApplicationID(c)
	if !ok {
		return
	}
	if err := h.applications.Delete(c.Request.Context(), id); err != nil {
		h.applicationWriteFailed(c, "delete application", err)
		return
	}
	h.written(c, "delete application", nil)
}

func (h *Handler) applicationWriteFailed(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, appdomain.ErrSlugTaken):
		fail(c, http.StatusBadRequest, "URL slug is already in use")
	case errors.Is(err, appdomain.ErrApplicationNotFound):
		fail(c, http.StatusNotFound, "Application not found")
	default:
		internalError(c, op, err)
	}
}

func readApplicationID(c *gin.Context) (int64, bool) {
	r := form.NewReader(c)
	id := r.ID("id", "Application ID is required", "Invalid application ID")
	if err := r.Err(); err != nil {
		invalid(c, err)
		return 0, false
	}
	return id, true
}

// readApplication checks fields in form order: id (update only), url,
// company, role, introduction, highlightedAchievements, defaultCategories,
// defaultScopes. A malformed highlight payload is logged and stored empty.
func readApplication(r *form.Reader, update bool) (appdomain.ApplicationInput, error) {
	var in appdomain.ApplicationInput
	if update {
		in.ID = r.ID("id", "Application ID is required", "Invalid application ID")
	}
	in.URL = appdomain.NormalizeSlug(r.Required("url", "URL slug is required"))
	if update {
		archived, _ := r.Optional("archived")
		in.Archived = archived == "true"
	}
	in.Company = r.Required("company", "Company name is required")
	in.Role = r.Required("role", "Role is required")
	in.Introduction = r.Required("introduction", "Introduction is required")
	highlights := r.Present("highlightedAchievements")
	in.DefaultCategories = r.List("defaultCategories")
	in.DefaultScopes = r.List("defaultScopes")
	if err := r.Err(); err != nil {
		return in, err
	}

	r.Check("defaultCategories", taxonomy.ValidateCategories(in.DefaultCategories))
	r.Check("defaultScopes", taxonomy.ValidateScopes(in.DefaultScopes))

	ids, comments, err := form.ParseHighlights(highlights)
	if err != nil {
		log.Printf("[admin] ignoring malformed highlightedAchievements: %v", err)
	}
	in.HighlightedAchievementIDs = ids
	in.HighlightedComments = comments
	return in, r.Err()
}
