package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

const maxPageSize = 100

// QueryService builds the public read views: project list, full board
// and timeline for one project, and the paginated/filtered variant.
type QueryService struct {
	projects ProjectStore
	tasks    TaskStore
	updates  UpdateStore
	cache    ViewCache // may be nil
	log      zerolog.Logger
}

// NewQueryService creates a query service. cache may be nil to disable
// read-view caching.
func NewQueryService(projects ProjectStore, tasks TaskStore, updates UpdateStore, cache ViewCache, log zerolog.Logger) *QueryService {
	return &QueryService{
		projects: projects,
		tasks:    tasks,
		updates:  updates,
		cache:    cache,
		log:      log,
	}
}

// ListProjects returns all projects in insertion order.
func (s *QueryService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetProjectList(ctx); err != nil {
			s.log.Warn().Err(err).Msg("project list cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProjectList(ctx, projects); err != nil {
			s.log.Warn().Err(err).Msg("project list cache write failed")
		}
	}
	return projects, nil
}

// GetDetails returns one project with all its tasks in board order
// (status rank, then creation time ascending) and all its updates newest
// first.
func (s *QueryService) GetDetails(ctx context.Context, slug string) (*domain.ProjectDetails, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDetails(ctx, slug); err != nil {
			s.log.Warn().Err(err).Str("slug", slug).Msg("details cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	updates, err := s.updates.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	details := &domain.ProjectDetails{
		Project: *project,
		Tasks:   tasks,
		Updates: updates,
	}

	if s.cache != nil {
		if err := s.cache.SetDetails(ctx, slug, details); err != nil {
			s.log.Warn().Err(err).Str("slug", slug).Msg("details cache write failed")
		}
	}
	return details, nil
}

// PageRequest addresses one zero-based page of a child collection.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: page must not be negative", domain.ErrInvalidArgument)
	}
	if p.Size < 1 || p.Size > maxPageSize {
		return fmt.Errorf("%w: size must be between 1 and %d", domain.ErrInvalidArgument, maxPageSize)
	}
	return nil
}

// GetDetailsPaged returns the project with tasks and updates paginated
// independently. Filter values are raw request tokens; each must parse
// to its enumeration (case-insensitive, trimmed) or the call fails with
// ErrInvalidArgument. Filters are ANDed; empty string means no
// constraint.
func (s *QueryService) GetDetailsPaged(ctx context.Context, slug, status, typ, priority string, taskPage, updatePage PageRequest) (*domain.ProjectDetailsPaged, error) {
	filter, err := parseTaskFilter(status, typ, priority)
	if err != nil {
		return nil, err
	}
	if err := taskPage.validate(); err != nil {
		return nil, err
	}
	if err := updatePage.validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	taskTotal, err := s.tasks.Count(ctx, project.ID, filter)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListPaged(ctx, project.ID, filter, taskPage.Size, taskPage.Page*taskPage.Size)
	if err != nil {
		return nil, err
	}

	updateTotal, err := s.updates.Count(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	updates, err := s.updates.ListPaged(ctx, project.ID, updatePage.Size, updatePage.Page*updatePage.Size)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectDetailsPaged{
		Project: *project,
		Tasks:   domain.NewPage(tasks, taskPage.Page, taskPage.Size, taskTotal),
		Updates: domain.NewPage(updates, updatePage.Page, updatePage.Size, updateTotal),
	}, nil
}

func parseTaskFilter(status, typ, priority string) (domain.TaskFilter, error) {
	var f domain.TaskFilter

	if status != "" {
		st, err := domain.ParseTaskStatus(status)
		if err != nil {
			return f, err
		}
		f.Status = &st
	}
	if typ != "" {
		ty, err := domain.ParseTaskType(typ)
		if err != nil {
			return f, err
		}
		f.Type = &ty
	}
	if priority != "" {
		pr, err := domain.ParseTaskPriority(priority)
		if err != nil {
			return f, err
		}
		f.Priority = &pr
	}
	return f, nil
}
