package domain

import "time"

// Application is a per-employer landing page. HighlightedAchievementIDs and
// HighlightedComments are parallel: comment i annotates achievement i.
type Application struct {
	ID                        int64     `json:"id"`
	URL                       string    `json:"url"`
	Archived                  bool      `json:"archived"`
	Company                   string    `json:"company"`
	Role                      string    `json:"role"`
	Introduction              string    `json:"introduction"`
	HighlightedAchievementIDs []int64   `json:"highlighted_achievement_ids"`
	HighlightedComments       []string  `json:"highlighted_comments"`
	DefaultCategories         []string  `json:"default_categories"`
	DefaultScopes             []string  `json:"default_scopes"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// ApplicationInput carries the writable columns. ID and Archived are
// ignored on insert.
type ApplicationInput struct {
	ID                        int64
	URL                       string
	Archived                  bool
	Company                   string
	Role                      string
	Introduction              string
	HighlightedAchievementIDs []int64
	HighlightedComments       []string
	DefaultCategories         []string
	DefaultScopes             []string
}
