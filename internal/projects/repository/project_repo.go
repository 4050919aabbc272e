package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

const projectCols = `id, slug, name, summary, description, tech_stack, repo_url, live_url, created_at, updated_at`

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row pgx.Row, p *domain.Project) error {
	return row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Summary, &p.Description,
		&p.TechStack, &p.RepoURL, &p.LiveURL, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create inserts a new project. A unique violation on the slug index is
// reported as domain.ErrConflict.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (id, slug, name, summary, description, tech_stack, repo_url, live_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`
	_, err := r.db.Exec(ctx, q,
		p.ID, p.Slug, p.Name, p.Summary, p.Description,
		p.TechStack, p.RepoURL, p.LiveURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: slug %q already exists", domain.ErrConflict, p.Slug)
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	q := `SELECT ` + projectCols + ` FROM projects ORDER BY created_at ASC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID returns one project or domain.ErrNotFound.
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := `SELECT ` + projectCols + ` FROM projects WHERE id = $1;`

	var p domain.Project
	if err := scanProject(r.db.QueryRow(ctx, q, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// GetBySlug returns one project by its slug or domain.ErrNotFound.
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	q := `SELECT ` + projectCols + ` FROM projects WHERE slug = $1;`

	var p domain.Project
	if err := scanProject(r.db.QueryRow(ctx, q, slug), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project by slug: %w", err)
	}
	return &p, nil
}

// SlugTaken reports whether another project (excluding excludeID) already
// uses the slug. Comparison is case-sensitive exact match.
func (r *ProjectRepository) SlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1 AND id <> $2);`

	var taken bool
	if err := r.db.QueryRow(ctx, q, slug, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return taken, nil
}

// Update persists every mutable column of the project.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	const q = `
UPDATE projects
SET slug = $2, name = $3, summary = $4, description = $5,
    tech_stack = $6, repo_url = $7, live_url = $8, updated_at = $9
WHERE id = $1;
`
	ct, err := r.db.Exec(ctx, q,
		p.ID, p.Slug, p.Name, p.Summary, p.Description,
		p.TechStack, p.RepoURL, p.LiveURL, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: slug %q already exists", domain.ErrConflict, p.Slug)
		}
		return fmt.Errorf("update project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the project. Tasks and updates go with it through the
// ON DELETE CASCADE constraints, so the removal is atomic.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM projects WHERE id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
