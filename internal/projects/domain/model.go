package domain

import "time"

// Project is a unit of work on the timeline. A nil End means the project
// is ongoing.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	Media       []string   `json:"media"`
	Skills      []string   `json:"skills"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Achievement belongs to exactly one project. Private is an admin-only note.
type Achievement struct {
	ID          int64     `json:"id"`
	ProjectID   string    `json:"project_id"`
	Summary     string    `json:"summary"`
	Description *string   `json:"description"`
	Private     string    `json:"private"`
	Order       int       `json:"order"`
	Tags        []string  `json:"tags"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectWithAchievements struct {
	Project
	Achievements []Achievement `json:"achievements"`
}

type ProjectsYear struct {
	Year     int                       `json:"year"`
	Projects []ProjectWithAchievements `json:"projects"`
}

// ProjectInput carries the writable project columns.
type ProjectInput struct {
	ID          string
	Name        string
	Description *string
	Start       time.Time
	End         *time.Time
	Media       []string
	Skills      []string
}

// AchievementInput carries the writable achievement columns. ID is ignored on
// insert.
type AchievementInput struct {
	ID          int64
	ProjectID   string
	Summary     string
	Description *string
	Private     string
	Order       int
	Tags        []string
}

// WithoutPrivateNotes returns a deep enough copy of years with every
// achievement's private note blanked, for anonymous readers.
func WithoutPrivateNotes(years []ProjectsYear) []ProjectsYear {
	out := make([]ProjectsYear, len(years))
	for i, y := range years {
		projects := make([]ProjectWithAchievements, len(y.Projects))
		for j, p := range y.Projects {
			achievements := make([]Achievement, len(p.Achievements))
			for k, a := range p.Achievements {
				a.Private = ""
				achievements[k] = a
			}
			p.Achievements = achievements
			projects[j] = p
		}
		out[i] = ProjectsYear{Year: y.Year, Projects: projects}
	}
	return out
}
