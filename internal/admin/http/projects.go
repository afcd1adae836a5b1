package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/admin/form"
	"github.com/folio-site/folio-backend/internal/projects/domain"
	"github.com/folio-site/folio-backend/internal/taxonomy"
)

// listProjects returns the timeline with private notes intact.
func (h *Handler) listProjects(c *gin.Context) {
	years, err := h.timeline.ProjectsByYear(c.Request.Context())
	if err != nil {
		internalError(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": years})
}

func (h *Handler) createProject(c *gin.Context) {
	in, err := readProject(form.NewReader(c), false)
	if err != nil {
		invalid(c, err)
		return
	}

	if err := h.projects.Create(c.Request.Context(), in); err != nil {
		if errors.Is(err, domain.ErrProjectExists) {
			fail(c, http.StatusBadRequest, "Project ID already exists")
			return
		}
		internalError(c, "create project", err)
		return
	}
	h.written(c, "create project", gin.H{"projectId": in.ID})
}

func (h *Handler) updateProject(c *gin.Context) {
	in, err := readProject(form.NewReader(c), true)
	if err != nil {
		invalid(c, err)
		return
	}

	if err := h.projects.Update(c.Request.Context(), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fail(c, http.StatusNotFound, "Project not found")
			return
		}
		internalError(c, "update project", err)
		return
	}
	h.written(c, "update project", nil)
}

func (h *Handler) deleteProject(c *gin.Context) {
	r := form.NewReader(c)
	id := r.Required("id", "Project ID is required")
	if err := r.Err(); err != nil {
		invalid(c, err)
		return
	}

	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fail(c, http.StatusNotFound, "Project not found")
			return
		}
		internalError(c, "delete project", err)
		return
	}
	h.written(c, "delete project", nil)
}

// readProject checks fields in form order: id, name, description, start,
// end, skills, media. Create needs a non-blank name; update only needs the
// field posted. Start must parse in both cases since the column is NOT NULL.
func readProject(r *form.Reader, update bool) (domain.ProjectInput, error) {
	in := domain.ProjectInput{ID: r.Required("id", "Project ID is required")}
	if update {
		in.Name = strings.TrimSpace(r.Present("name"))
	} else {
		in.Name = r.Required("name", "Project name is required")
	}
	in.Description = optionalText(r.Present("description"))
	in.Start = r.Date("start", "Start date is required")
	in.End = r.OptionalDate("end")
	in.Skills = r.List("skills")
	in.Media = r.Lines("media")
	if r.Err() == nil {
		r.Check("skills", taxonomy.ValidateSkills(in.Skills))
	}
	return in, r.Err()
}

// optionalText maps a blank text area to NULL.
func optionalText(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
