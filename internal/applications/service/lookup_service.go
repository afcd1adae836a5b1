package service

import (
	"context"
	"fmt"

	"github.com/folio-site/folio-backend/internal/applications/domain"
	projectsdomain "github.com/folio-site/folio-backend/internal/projects/domain"
	"github.com/folio-site/folio-backend/internal/taxonomy"
)

type ApplicationFinder interface {
	GetBySlug(ctx context.Context, url string) (*domain.Application, error)
}

type Projector interface {
	ProjectsByYear(ctx context.Context) ([]projectsdomain.ProjectsYear, error)
}

// Page is everything the landing page for one application needs. When
// RedirectURL is set the other fields are empty.
type Page struct {
	RedirectURL string
	Application *domain.Application
	Years       []projectsdomain.ProjectsYear
	Filters     taxonomy.FilterState
}

// LookupService resolves a landing-page slug to a redirect or a page.
type LookupService struct {
	apps      ApplicationFinder
	projector Projector
	redirects map[string]string
}

// NewLookupService folds the redirect keys so they match the same slugs the
// database does.
func NewLookupService(apps ApplicationFinder, projector Projector, redirects map[string]string) *LookupService {
	folded := make(map[string]string, len(redirects))
	for slug, target := range redirects {
		folded[domain.NormalizeSlug(slug)] = target
	}
	return &LookupService{apps: apps, projector: projector, redirects: folded}
}

// Lookup checks the redirect table first, then the stored applications.
// Archived applications are reported as not found.
func (s *LookupService) Lookup(ctx context.Context, slug string) (*Page, error) {
	slug = domain.NormalizeSlug(slug)
	if slug == "" {
		return nil, domain.ErrApplicationNotFound
	}
	if target, ok := s.redirects[slug]; ok {
		return &Page{RedirectURL: target}, nil
	}

	app, err := s.apps.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if app.Archived {
		return nil, domain.ErrApplicationNotFound
	}

	years, err := s.projector.ProjectsByYear(ctx)
	if err != nil {
		return nil, fmt.Errorf("project timeline: %w", err)
	}

	return &Page{
		Application: app,
		Years:       years,
		Filters:     Preselect(app),
	}, nil
}

// Preselect is the filter state a landing page opens with: the
// application's default categories and scopes, or everything when unset.
func Preselect(app *domain.Application) taxonomy.FilterState {
	f := taxonomy.NewFilter()
	if len(app.DefaultCategories) > 0 {
		f.SelectCategories(app.DefaultCategories)
	}
	f.SelectScopes(app.DefaultScopes)
	return f.Snapshot()
}
