package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/folio-site/folio-backend/internal/projects/domain"
)

// AchievementRepository provides persistence operations for achievements
type AchievementRepository struct {
	db *sql.DB
}

func NewAchievementRepository(db *sql.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// List returns every achievement in display order.
func (r *AchievementRepository) List(ctx context.Context) ([]domain.Achievement, error) {
	const q = `
SELECT id, project_id, summary, description, private, sort_order, tags, updated_at
FROM achievements
ORDER BY sort_order ASC, id ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Achievement, 0, 128)
	for rows.Next() {
		var (
			a           domain.Achievement
			description sql.NullString
		)
		if err := rows.Scan(
			&a.ID,
			&a.ProjectID,
			&a.Summary,
			&description,
			&a.Private,
			&a.Order,
			pq.Array(&a.Tags),
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if description.Valid {
			a.Description = &description.String
		}
		a.Tags = nonNil(a.Tags)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts an achievement and returns its generated id. An unknown
// project id returns domain.ErrNotFound.
func (r *AchievementRepository) Create(ctx context.Context, in domain.AchievementInput) (int64, error) {
	const q = `
INSERT INTO achievements (project_id, summary, description, private, sort_order, tags, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		in.ProjectID, in.Summary, in.Description, in.Private, in.Order, pq.Array(nonNil(in.Tags)),
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// Update overwrites the editable columns. The owning project is not moved.
func (r *AchievementRepository) Update(ctx context.Context, in domain.AchievementInput) error {
	const q = `
UPDATE achievements
SET summary = $2, description = $3, private = $4, sort_order = $5, tags = $6, updated_at = now()
WHERE id = $1;
`
	result, err := r.db.ExecContext(ctx, q,
		in.ID, in.Summary, in.Description, in.Private, in.Order, pq.Array(nonNil(in.Tags)),
	)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrAchievementNotFound)
}
