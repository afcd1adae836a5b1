package http

import (
	"context"

	"github.com/folio-site/folio-backend/internal/projects/domain"
)

type Projector interface {
	ProjectsByYear(ctx context.Context) ([]domain.ProjectsYear, error)
}

// Handler bundles the dependencies for the public project endpoints.
type Handler struct {
	projector Projector
}

func New(projector Projector) *Handler {
	return &Handler{projector: projector}
}
