// Package deploy watches the content tables and asks the hosting provider to
// rebuild the static site when something changed.
package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// watchedTables are the tables whose rows end up in the built site, plus
// content_deletions, which triggers stamp on every hard delete.
var watchedTables = []string{"projects", "achievements", "applications", "content_deletions"}

// Querier is the slice of *pgxpool.Pool the detector needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ChangeDetector struct {
	db Querier
}

func NewChangeDetector(db Querier) *ChangeDetector {
	return &ChangeDetector{db: db}
}

// CountChangedSince reports how many watched tables have at least one row
// updated after since. A delete counts through content_deletions.
func (d *ChangeDetector) CountChangedSince(ctx context.Context, since time.Time) (int, error) {
	count := 0
	for _, table := range watchedTables {
		q := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE updated_at > $1)`
		var changed bool
		if err := d.db.QueryRow(ctx, q, since).Scan(&changed); err != nil {
			return 0, fmt.Errorf("check %s: %w", table, err)
		}
		if changed {
			count++
		}
	}
	return count, nil
}
