package domain

import (
	"fmt"
	"strings"
)

type TaskStatus string

const (
	StatusBacklog    TaskStatus = "BACKLOG"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

type TaskType string

const (
	TypeFeature  TaskType = "FEATURE"
	TypeBug      TaskType = "BUG"
	TypeRefactor TaskType = "REFACTOR"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Rank orders statuses for board views: BACKLOG < IN_PROGRESS < DONE.
func (s TaskStatus) Rank() int {
	switch s {
	case StatusBacklog:
		return 1
	case StatusInProgress:
		return 2
	case StatusDone:
		return 3
	default:
		return 99
	}
}

// ParseTaskStatus accepts the enumerated tokens case-insensitively,
// trimming surrounding whitespace. Anything else is ErrInvalidArgument.
func ParseTaskStatus(v string) (TaskStatus, error) {
	switch s := TaskStatus(normalize(v)); s {
	case StatusBacklog, StatusInProgress, StatusDone:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown task status %q", ErrInvalidArgument, v)
	}
}

func ParseTaskType(v string) (TaskType, error) {
	switch t := TaskType(normalize(v)); t {
	case TypeFeature, TypeBug, TypeRefactor:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown task type %q", ErrInvalidArgument, v)
	}
}

func ParseTaskPriority(v string) (TaskPriority, error) {
	switch p := TaskPriority(normalize(v)); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown task priority %q", ErrInvalidArgument, v)
	}
}

func normalize(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
