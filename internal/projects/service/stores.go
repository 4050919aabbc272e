package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

// ProjectStore is the persistence surface the services need for projects.
// Implemented by repository.ProjectRepository.
type ProjectStore interface {
	Create(ctx context.Context, p *domain.Project) error
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	SlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskStore is implemented by repository.TaskRepository.
type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)
	ListPaged(ctx context.Context, projectID uuid.UUID, f domain.TaskFilter, limit, offset int) ([]domain.Task, error)
	Count(ctx context.Context, projectID uuid.UUID, f domain.TaskFilter) (int64, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateStore is implemented by repository.UpdateRepository.
type UpdateStore interface {
	Create(ctx context.Context, u *domain.Update) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Update, error)
	ListPaged(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]domain.Update, error)
	Count(ctx context.Context, projectID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ViewCache is the optional read-view cache. Implemented by
// cache.DetailsCache; services tolerate a nil cache.
type ViewCache interface {
	GetDetails(ctx context.Context, slug string) (*domain.ProjectDetails, error)
	SetDetails(ctx context.Context, slug string, d *domain.ProjectDetails) error
	GetProjectList(ctx context.Context) ([]domain.Project, error)
	SetProjectList(ctx context.Context, projects []domain.Project) error
	Invalidate(ctx context.Context, slug string) error
}
