package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

// In-memory store fakes mirroring the repository ordering contracts:
// projects by creation time, tasks by status rank then creation time,
// updates newest first.

type fakeProjectStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]domain.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]domain.Project)}
}

func (f *fakeProjectStore) Create(_ context.Context, p *domain.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, q := range f.projects {
		if q.Slug == p.Slug {
			return domain.ErrConflict
		}
	}
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeProjectStore) List(_ context.Context) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProjectStore) GetBySlug(_ context.Context, slug string) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProjectStore) SlugTaken(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.projects {
		if p.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectStore) Update(_ context.Context, p *domain.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]domain.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]domain.Task)}
}

func (f *fakeTaskStore) Create(_ context.Context, t *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeTaskStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTaskStore) matching(projectID uuid.UUID, filter domain.TaskFilter) []domain.Task {
	var out []domain.Task
	for _, t := range f.tasks {
		if t.ProjectID != projectID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Status.Rank() != out[j].Status.Rank() {
			return out[i].Status.Rank() < out[j].Status.Rank()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (f *fakeTaskStore) ListByProject(_ context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.matching(projectID, domain.TaskFilter{}), nil
}

func (f *fakeTaskStore) ListPaged(_ context.Context, projectID uuid.UUID, filter domain.TaskFilter, limit, offset int) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.matching(projectID, filter)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeTaskStore) Count(_ context.Context, projectID uuid.UUID, filter domain.TaskFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.matching(projectID, filter))), nil
}

func (f *fakeTaskStore) Update(_ context.Context, t *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeUpdateStore struct {
	mu      sync.Mutex
	updates map[uuid.UUID]domain.Update
}

func newFakeUpdateStore() *fakeUpdateStore {
	return &fakeUpdateStore{updates: make(map[uuid.UUID]domain.Update)}
}

func (f *fakeUpdateStore) Create(_ context.Context, u *domain.Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[u.ID] = *u
	return nil
}

func (f *fakeUpdateStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Update, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.updates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUpdateStore) byProject(projectID uuid.UUID) []domain.Update {
	var out []domain.Update
	for _, u := range f.updates {
		if u.ProjectID == projectID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeUpdateStore) ListByProject(_ context.Context, projectID uuid.UUID) ([]domain.Update, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byProject(projectID), nil
}

func (f *fakeUpdateStore) ListPaged(_ context.Context, projectID uuid.UUID, limit, offset int) ([]domain.Update, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.byProject(projectID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeUpdateStore) Count(_ context.Context, projectID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byProject(projectID))), nil
}

func (f *fakeUpdateStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.updates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.updates, id)
	return nil
}

// fakeViewCache records invalidations so tests can assert mutations
// drop cached views.
type fakeViewCache struct {
	mu          sync.Mutex
	details     map[string]*domain.ProjectDetails
	list        []domain.Project
	invalidated []string
	listDropped int
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{details: make(map[string]*domain.ProjectDetails)}
}

func (f *fakeViewCache) GetDetails(_ context.Context, slug string) (*domain.ProjectDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.details[slug], nil
}

func (f *fakeViewCache) SetDetails(_ context.Context, slug string, d *domain.ProjectDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details[slug] = d
	return nil
}

func (f *fakeViewCache) GetProjectList(_ context.Context) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list, nil
}

func (f *fakeViewCache) SetProjectList(_ context.Context, projects []domain.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = projects
	return nil
}

func (f *fakeViewCache) Invalidate(_ context.Context, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = nil
	f.listDropped++
	if slug != "" {
		delete(f.details, slug)
		f.invalidated = append(f.invalidated, slug)
	}
	return nil
}
