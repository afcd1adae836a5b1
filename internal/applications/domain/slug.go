package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// NormalizeSlug trims and case-folds a landing-page slug. Slugs are stored
// and looked up in this form.
func NormalizeSlug(raw string) string {
	return folder.String(strings.TrimSpace(raw))
}
