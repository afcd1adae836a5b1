package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/folio-site/folio-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, name, description, start_date, end_date, media, skills, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// List returns every project, most recently started first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
ORDER BY start_date DESC, id ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 32)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new project. A taken id returns domain.ErrProjectExists.
func (r *ProjectRepository) Create(ctx context.Context, in domain.ProjectInput) error {
	const q = `
INSERT INTO projects (id, name, description, start_date, end_date, media, skills, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now());
`
	_, err := r.db.ExecContext(ctx, q,
		in.ID, in.Name, in.Description, in.Start, in.End,
		pq.Array(nonNil(in.Media)), pq.Array(nonNil(in.Skills)),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrProjectExists
		}
		return err
	}
	return nil
}

// Update overwrites the writable columns of an existing project.
func (r *ProjectRepository) Update(ctx context.Context, in domain.ProjectInput) error {
	const q = `
UPDATE projects
SET name = $2, description = $3, start_date = $4, end_date = $5, media = $6, skills = $7, updated_at = now()
WHERE id = $1;
`
	result, err := r.db.ExecContext(ctx, q,
		in.ID, in.Name, in.Description, in.Start, in.End,
		pq.Array(nonNil(in.Media)), pq.Array(nonNil(in.Skills)),
	)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrNotFound)
}

// Delete removes a project; its achievements go with it via ON DELETE CASCADE.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM projects WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrNotFound)
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p           domain.Project
		description sql.NullString
		end         sql.NullTime
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&description,
		&p.Start,
		&end,
		pq.Array(&p.Media),
		pq.Array(&p.Skills),
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	if end.Valid {
		t := end.Time
		p.End = &t
	}
	p.Media = nonNil(p.Media)
	p.Skills = nonNil(p.Skills)
	return &p, nil
}

func expectOneRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
