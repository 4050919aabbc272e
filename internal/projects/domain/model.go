package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a single portfolio entry. It is intentionally
// storage-agnostic and used across repository and HTTP layers. A project
// owns its tasks and updates; deleting it removes both.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Summary     string    `json:"summary,omitempty"`
	Description string    `json:"description,omitempty"`
	TechStack   string    `json:"techStack,omitempty"`
	RepoURL     string    `json:"repoUrl,omitempty"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Task is a roadmap item on a project's board. ProjectID never changes
// after creation.
type Task struct {
	ID            uuid.UUID    `json:"id"`
	ProjectID     uuid.UUID    `json:"projectId"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Status        TaskStatus   `json:"status"`
	Type          TaskType     `json:"type"`
	Priority      TaskPriority `json:"priority"`
	TargetVersion string       `json:"targetVersion,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Update is an immutable dev-log entry. No patch operation exists;
// updates are created and deleted only.
type Update struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Page is one slice of a filtered collection, with enough metadata for
// clients to drive pagination.
type Page[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
}

// NewPage computes the derived page metadata from a slice of items and
// the total matching row count.
func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       int64(page+1)*int64(size) < total,
	}
}

// TaskFilter narrows task queries. Nil fields apply no constraint;
// set fields are ANDed together.
type TaskFilter struct {
	Status   *TaskStatus
	Type     *TaskType
	Priority *TaskPriority
}

// ProjectDetails is the full read view of one project.
type ProjectDetails struct {
	Project Project  `json:"project"`
	Tasks   []Task   `json:"tasks"`
	Updates []Update `json:"updates"`
}

// ProjectDetailsPaged is the paginated read view: tasks and updates
// page independently.
type ProjectDetailsPaged struct {
	Project Project      `json:"project"`
	Tasks   Page[Task]   `json:"tasks"`
	Updates Page[Update] `json:"updates"`
}
