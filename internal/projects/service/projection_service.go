package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/folio-site/folio-backend/internal/projects/domain"
)

type ProjectLister interface {
	List(ctx context.Context) ([]domain.Project, error)
}

type AchievementLister interface {
	List(ctx context.Context) ([]domain.Achievement, error)
}

// ProjectionService builds the year-grouped timeline from projects and
// achievements.
type ProjectionService struct {
	projects     ProjectLister
	achievements AchievementLister
	now          func() time.Time
}

func NewProjectionService(projects ProjectLister, achievements AchievementLister) *ProjectionService {
	return &ProjectionService{
		projects:     projects,
		achievements: achievements,
		now:          time.Now,
	}
}

// WithClock replaces the clock that decides the year of ongoing projects.
func (s *ProjectionService) WithClock(now func() time.Time) *ProjectionService {
	s.now = now
	return s
}

// ProjectsByYear joins achievements to projects and buckets projects by the
// year they ended, or the current year when still ongoing. Years are
// returned newest first; projects keep the order the lister returned.
func (s *ProjectionService) ProjectsByYear(ctx context.Context) ([]domain.ProjectsYear, error) {
	achievements, err := s.achievements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	byProject := make(map[string][]domain.Achievement, len(projects))
	for _, a := range achievements {
		byProject[a.ProjectID] = append(byProject[a.ProjectID], a)
	}

	thisYear := s.now().Year()
	buckets := map[int][]domain.ProjectWithAchievements{}
	for _, p := range projects {
		year := thisYear
		if p.End != nil {
			year = p.End.Year()
		}
		list := byProject[p.ID]
		if list == nil {
			list = []domain.Achievement{}
		}
		buckets[year] = append(buckets[year], domain.ProjectWithAchievements{
			Project:      p,
			Achievements: list,
		})
	}

	years := make([]int, 0, len(buckets))
	for y := range buckets {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	out := make([]domain.ProjectsYear, 0, len(years))
	for _, y := range years {
		out = append(out, domain.ProjectsYear{Year: y, Projects: buckets[y]})
	}
	return out, nil
}

// FindProject locates a project inside an already built projection.
func FindProject(years []domain.ProjectsYear, id string) (*domain.ProjectWithAchievements, error) {
	for _, y := range years {
		for i := range y.Projects {
			if y.Projects[i].ID == id {
				return &y.Projects[i], nil
			}
		}
	}
	return nil, domain.ErrNotFound
}
