package http

import (
	"context"

	appdomain "github.com/folio-site/folio-backend/internal/applications/domain"
	"github.com/folio-site/folio-backend/internal/projects/domain"
)

type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, in domain.ProjectInput) error
	Update(ctx context.Context, in domain.ProjectInput) error
	Delete(ctx context.Context, id string) error
}

type AchievementStore interface {
	List(ctx context.Context) ([]domain.Achievement, error)
	Create(ctx context.Context, in domain.AchievementInput) (int64, error)
	Update(ctx context.Context, in domain.AchievementInput) error
}

type ApplicationStore interface {
	List(ctx context.Context) ([]appdomain.Application, error)
	Create(ctx context.Context, in appdomain.ApplicationInput) (int64, error)
	Update(ctx context.Context, in appdomain.ApplicationInput) error
	Archive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Timeline is the cached year projection: read for the admin views and
// dropped after every successful write.
type Timeline interface {
	ProjectsByYear(ctx context.Context) ([]domain.ProjectsYear, error)
	Invalidate(ctx context.Context) error
}

// Handler bundles the dependencies for the admin endpoints.
type Handler struct {
	projects     ProjectStore
	achievements AchievementStore
	applications ApplicationStore
	timeline     Timeline
}

func New(projects ProjectStore, achievements AchievementStore, applications ApplicationStore, timeline Timeline) *Handler {
	return &Handler{
		projects:     projects,
		achievements: achievements,
		applications: applications,
		timeline:     timeline,
	}
}
