package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

// AdminService performs the validated mutations behind the admin routes.
// Validation happens before any store call; nothing is written when a
// payload is rejected.
type AdminService struct {
	projects ProjectStore
	tasks    TaskStore
	updates  UpdateStore
	cache    ViewCache // may be nil
	log      zerolog.Logger
	now      func() time.Time
}

// NewAdminService creates an admin service. cache may be nil.
func NewAdminService(projects ProjectStore, tasks TaskStore, updates UpdateStore, cache ViewCache, log zerolog.Logger) *AdminService {
	return &AdminService{
		projects: projects,
		tasks:    tasks,
		updates:  updates,
		cache:    cache,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateProjectInput carries the fields for a new project. Slug and Name
// are required; the rest default to empty.
type CreateProjectInput struct {
	Slug        string
	Name        string
	Summary     string
	Description string
	TechStack   string
	RepoURL     string
	LiveURL     string
}

// PatchProjectInput is a sparse patch: nil fields are left untouched.
// A JSON null decodes to nil as well, so optional text fields can only
// be cleared by sending an explicit empty string.
type PatchProjectInput struct {
	Slug        *string
	Name        *string
	Summary     *string
	Description *string
	TechStack   *string
	RepoURL     *string
	LiveURL     *string
}

// CreateProject validates and stores a new project. The slug is checked
// against existing projects before the insert so a duplicate comes back
// as a clean Conflict instead of a raw storage violation.
func (s *AdminService) CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	slug := strings.TrimSpace(in.Slug)
	name := strings.TrimSpace(in.Name)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}

	taken, err := s.projects.SlugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: slug %q already exists", domain.ErrConflict, slug)
	}

	now := s.now()
	p := &domain.Project{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        name,
		Summary:     in.Summary,
		Description: in.Description,
		TechStack:   in.TechStack,
		RepoURL:     in.RepoURL,
		LiveURL:     in.LiveURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, "")
	return p, nil
}

// PatchProject applies the set fields of the patch and refreshes
// updatedAt. A slug change re-runs the uniqueness check against all
// other projects.
func (s *AdminService) PatchProject(ctx context.Context, id uuid.UUID, in PatchProjectInput) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := p.Slug

	if in.Slug != nil {
		slug := strings.TrimSpace(*in.Slug)
		if slug == "" {
			return nil, fmt.Errorf("%w: slug must not be blank", domain.ErrInvalidArgument)
		}
		if slug != p.Slug {
			taken, err := s.projects.SlugTaken(ctx, slug, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, fmt.Errorf("%w: slug %q already exists", domain.ErrConflict, slug)
			}
			p.Slug = slug
		}
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be blank", domain.ErrInvalidArgument)
		}
		p.Name = name
	}
	if in.Summary != nil {
		p.Summary = *in.Summary
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.TechStack != nil {
		p.TechStack = *in.TechStack
	}
	if in.RepoURL != nil {
		p.RepoURL = *in.RepoURL
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}

	p.UpdatedAt = s.now()
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, oldSlug)
	if p.Slug != oldSlug {
		s.invalidate(ctx, p.Slug)
	}
	return p, nil
}

// DeleteProject removes the project and, through the storage cascade,
// every task and update it owns.
func (s *AdminService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, p.Slug)
	return nil
}

// CreateTaskInput carries the fields for a new task. Status, Type and
// Priority are raw tokens validated against the enumerations.
type CreateTaskInput struct {
	Title         string
	Description   string
	Status        string
	Type          string
	Priority      string
	TargetVersion string
}

// PatchTaskInput is a sparse patch for a task; nil fields are left
// untouched. Enum fields must parse when set.
type PatchTaskInput struct {
	Title         *string
	Description   *string
	Status        *string
	Type          *string
	Priority      *string
	TargetVersion *string
}

// CreateTask validates and stores a new task under the project.
func (s *AdminService) CreateTask(ctx context.Context, projectID uuid.UUID, in CreateTaskInput) (*domain.Task, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}

	status, err := domain.ParseTaskStatus(in.Status)
	if err != nil {
		return nil, err
	}
	typ, err := domain.ParseTaskType(in.Type)
	if err != nil {
		return nil, err
	}
	priority, err := domain.ParseTaskPriority(in.Priority)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &domain.Task{
		ID:            uuid.New(),
		ProjectID:     projectID,
		Title:         title,
		Description:   in.Description,
		Status:        status,
		Type:          typ,
		Priority:      priority,
		TargetVersion: in.TargetVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}

	s.invalidate(ctx, project.Slug)
	return t, nil
}

// PatchTask applies the set fields of the patch and refreshes updatedAt.
// When projectScope is non-nil the task must belong to that project;
// a mismatch reads the same as a missing task.
func (s *AdminService) PatchTask(ctx context.Context, taskID uuid.UUID, projectScope *uuid.UUID, in PatchTaskInput) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if projectScope != nil && *projectScope != t.ProjectID {
		return nil, domain.ErrNotFound
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be blank", domain.ErrInvalidArgument)
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.TargetVersion != nil {
		t.TargetVersion = *in.TargetVersion
	}
	if in.Status != nil {
		status, err := domain.ParseTaskStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		t.Status = status
	}
	if in.Type != nil {
		typ, err := domain.ParseTaskType(*in.Type)
		if err != nil {
			return nil, err
		}
		t.Type = typ
	}
	if in.Priority != nil {
		priority, err := domain.ParseTaskPriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		t.Priority = priority
	}

	t.UpdatedAt = s.now()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateProjectSlug(ctx, t.ProjectID)
	return t, nil
}

// DeleteTask removes one task, honoring the optional project scope the
// same way PatchTask does.
func (s *AdminService) DeleteTask(ctx context.Context, taskID uuid.UUID, projectScope *uuid.UUID) error {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if projectScope != nil && *projectScope != t.ProjectID {
		return domain.ErrNotFound
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}

	s.invalidateProjectSlug(ctx, t.ProjectID)
	return nil
}

// CreateUpdateInput carries the fields for a new dev-log entry.
type CreateUpdateInput struct {
	Title string
	Body  string
}

// CreateUpdate validates and stores a new update under the project.
func (s *AdminService) CreateUpdate(ctx context.Context, projectID uuid.UUID, in CreateUpdateInput) (*domain.Update, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", domain.ErrInvalidArgument)
	}

	u := &domain.Update{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     title,
		Body:      body,
		CreatedAt: s.now(),
	}
	if err := s.updates.Create(ctx, u); err != nil {
		return nil, err
	}

	s.invalidate(ctx, project.Slug)
	return u, nil
}

// DeleteUpdate removes one update.
func (s *AdminService) DeleteUpdate(ctx context.Context, updateID uuid.UUID) error {
	u, err := s.updates.GetByID(ctx, updateID)
	if err != nil {
		return err
	}
	if err := s.updates.Delete(ctx, updateID); err != nil {
		return err
	}

	s.invalidateProjectSlug(ctx, u.ProjectID)
	return nil
}

// invalidate drops cached read views. Cache failures are logged, never
// surfaced: the store already holds the truth.
func (s *AdminService) invalidate(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, slug); err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("cache invalidation failed")
	}
}

func (s *AdminService) invalidateProjectSlug(ctx context.Context, projectID uuid.UUID) {
	if s.cache == nil {
		return
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", projectID.String()).Msg("cache invalidation lookup failed")
		return
	}
	s.invalidate(ctx, p.Slug)
}
