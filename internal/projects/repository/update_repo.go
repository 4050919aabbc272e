package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

const updateCols = `id, project_id, title, body, created_at`

// UpdateRepository provides persistence operations for dev-log updates.
type UpdateRepository struct {
	db *pgxpool.Pool
}

// NewUpdateRepository creates a new update repository.
func NewUpdateRepository(db *pgxpool.Pool) *UpdateRepository {
	return &UpdateRepository{db: db}
}

func scanUpdate(row pgx.Row, u *domain.Update) error {
	return row.Scan(&u.ID, &u.ProjectID, &u.Title, &u.Body, &u.CreatedAt)
}

// Create inserts a new update under its project.
func (r *UpdateRepository) Create(ctx context.Context, u *domain.Update) error {
	const q = `
INSERT INTO updates (id, project_id, title, body, created_at)
VALUES ($1, $2, $3, $4, $5);
`
	_, err := r.db.Exec(ctx, q, u.ID, u.ProjectID, u.Title, u.Body, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert update: %w", err)
	}
	return nil
}

// GetByID returns one update or domain.ErrNotFound.
func (r *UpdateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error) {
	q := `SELECT ` + updateCols + ` FROM updates WHERE id = $1;`

	var u domain.Update
	if err := scanUpdate(r.db.QueryRow(ctx, q, id), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get update: %w", err)
	}
	return &u, nil
}

// ListByProject returns every update of a project, newest first.
func (r *UpdateRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Update, error) {
	q := `SELECT ` + updateCols + ` FROM updates WHERE project_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()

	return collectUpdates(rows)
}

// ListPaged returns one page of a project's updates, newest first.
func (r *UpdateRepository) ListPaged(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]domain.Update, error) {
	q := `
SELECT ` + updateCols + `
FROM updates
WHERE project_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.Query(ctx, q, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list updates paged: %w", err)
	}
	defer rows.Close()

	return collectUpdates(rows)
}

// Count returns the number of updates a project owns.
func (r *UpdateRepository) Count(ctx context.Context, projectID uuid.UUID) (int64, error) {
	const q = `SELECT count(*) FROM updates WHERE project_id = $1;`

	var n int64
	if err := r.db.QueryRow(ctx, q, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count updates: %w", err)
	}
	return n, nil
}

// Delete removes one update.
func (r *UpdateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM updates WHERE id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete update: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectUpdates(rows pgx.Rows) ([]domain.Update, error) {
	out := make([]domain.Update, 0, 16)
	for rows.Next() {
		var u domain.Update
		if err := scanUpdate(rows, &u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
