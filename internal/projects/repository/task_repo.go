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

const taskCols = `id, project_id, title, description, status, type, priority, target_version, created_at, updated_at`

// Board ordering: status rank first, then creation time ascending.
const taskOrder = `
ORDER BY
  CASE status
    WHEN 'BACKLOG' THEN 1
    WHEN 'IN_PROGRESS' THEN 2
    WHEN 'DONE' THEN 3
    ELSE 99
  END,
  created_at ASC
`

// TaskRepository provides persistence operations for tasks.
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row, t *domain.Task) error {
	return row.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description,
		&t.Status, &t.Type, &t.Priority, &t.TargetVersion,
		&t.CreatedAt, &t.UpdatedAt,
	)
}

// Create inserts a new task under its project.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	const q = `
INSERT INTO tasks (id, project_id, title, description, status, type, priority, target_version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`
	_, err := r.db.Exec(ctx, q,
		t.ID, t.ProjectID, t.Title, t.Description,
		t.Status, t.Type, t.Priority, t.TargetVersion,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID returns one task or domain.ErrNotFound.
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	q := `SELECT ` + taskCols + ` FROM tasks WHERE id = $1;`

	var t domain.Task
	if err := scanTask(r.db.QueryRow(ctx, q, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// ListByProject returns every task of a project in board order.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	q := `SELECT ` + taskCols + ` FROM tasks WHERE project_id = $1 ` + taskOrder + `;`

	rows, err := r.db.Query(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// ListPaged returns one page of a project's tasks in board order,
// optionally narrowed by the filter.
func (r *TaskRepository) ListPaged(ctx context.Context, projectID uuid.UUID, f domain.TaskFilter, limit, offset int) ([]domain.Task, error) {
	q := `
SELECT ` + taskCols + `
FROM tasks
WHERE project_id = $1
  AND ($2::text IS NULL OR status = $2)
  AND ($3::text IS NULL OR type = $3)
  AND ($4::text IS NULL OR priority = $4)
` + taskOrder + `
LIMIT $5 OFFSET $6;
`
	rows, err := r.db.Query(ctx, q, projectID, f.Status, f.Type, f.Priority, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks paged: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// Count returns the number of tasks matching the filter.
func (r *TaskRepository) Count(ctx context.Context, projectID uuid.UUID, f domain.TaskFilter) (int64, error) {
	const q = `
SELECT count(*)
FROM tasks
WHERE project_id = $1
  AND ($2::text IS NULL OR status = $2)
  AND ($3::text IS NULL OR type = $3)
  AND ($4::text IS NULL OR priority = $4);
`
	var n int64
	if err := r.db.QueryRow(ctx, q, projectID, f.Status, f.Type, f.Priority).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

// Update persists every mutable column of the task. The project
// reference is deliberately not part of the statement.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	const q = `
UPDATE tasks
SET title = $2, description = $3, status = $4, type = $5,
    priority = $6, target_version = $7, updated_at = $8
WHERE id = $1;
`
	ct, err := r.db.Exec(ctx, q,
		t.ID, t.Title, t.Description, t.Status, t.Type,
		t.Priority, t.TargetVersion, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes one task.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM tasks WHERE id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectTasks(rows pgx.Rows) ([]domain.Task, error) {
	out := make([]domain.Task, 0, 16)
	for rows.Next() {
		var t domain.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
