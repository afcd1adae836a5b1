package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/folio-site/folio-backend/internal/applications/domain"
)

// ApplicationRepository provides persistence operations for applications
type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, url, archived, company, role, introduction,
	highlighted_achievement_ids, highlighted_comments, default_categories, default_scopes, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// List returns every application, newest first, archived ones included.
func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	const q = `
SELECT ` + applicationColumns + `
FROM applications
ORDER BY id DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Application, 0, 16)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBySlug returns the application stored under url. Slugs are stored
// folded, so callers pass a folded slug.
func (r *ApplicationRepository) GetBySlug(ctx context.Context, url string) (*domain.Application, error) {
	const q = `
SELECT ` + applicationColumns + `
FROM applications
WHERE url = $1;
`
	a, err := scanApplication(r.db.QueryRowContext(ctx, q, url))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an unarchived application and returns its id.
func (r *ApplicationRepository) Create(ctx context.Context, in domain.ApplicationInput) (int64, error) {
	const q = `
INSERT INTO applications (
	url, company, role, introduction,
	highlighted_achievement_ids, highlighted_comments, default_categories, default_scopes, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
RETURNING id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		in.URL, in.Company, in.Role, in.Introduction,
		pq.Array(nonNilIDs(in.HighlightedAchievementIDs)),
		pq.Array(nonNil(in.HighlightedComments)),
		pq.Array(nonNil(in.DefaultCategories)),
		pq.Array(nonNil(in.DefaultScopes)),
	).Scan(&id)
	if err != nil {
		return 0, mapWriteErr(err)
	}
	return id, nil
}

// Update overwrites every writable column, including the archived flag.
func (r *ApplicationRepository) Update(ctx context.Context, in domain.ApplicationInput) error {
	const q = `
UPDATE applications
SET url = $2, archived = $3, company = $4, role = $5, introduction = $6,
	highlighted_achievement_ids = $7, highlighted_comments = $8,
	default_categories = $9, default_scopes = $10, updated_at = now()
WHERE id = $1;
`
	result, err := r.db.ExecContext(ctx, q,
		in.ID, in.URL, in.Archived, in.Company, in.Role, in.Introduction,
		pq.Array(nonNilIDs(in.HighlightedAchievementIDs)),
		pq.Array(nonNil(in.HighlightedComments)),
		pq.Array(nonNil(in.DefaultCategories)),
		pq.Array(nonNil(in.DefaultScopes)),
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return expectOneRow(result)
}

// Archive hides an application from public lookup.
func (r *ApplicationRepository) Archive(ctx context.Context, id int64) error {
	const q = `UPDATE applications SET archived = true, updated_at = now() WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM applications WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ID,
		&a.URL,
		&a.Archived,
		&a.Company,
		&a.Role,
		&a.Introduction,
		pq.Array(&a.HighlightedAchievementIDs),
		pq.Array(&a.HighlightedComments),
		pq.Array(&a.DefaultCategories),
		pq.Array(&a.DefaultScopes),
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.HighlightedAchievementIDs = nonNilIDs(a.HighlightedAchievementIDs)
	a.HighlightedComments = nonNil(a.HighlightedComments)
	a.DefaultCategories = nonNil(a.DefaultCategories)
	a.DefaultScopes = nonNil(a.DefaultScopes)
	return &a, nil
}

func mapWriteErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrSlugTaken
	}
	return err
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilIDs(s []int64) []int64 {
	if s == nil {
		return []int64{}
	}
	return s
}
