package http

import "github.com/vasilika/portfolio-tracker-backend/internal/projects/service"

type createProjectReq struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
	RepoURL     string `json:"repoUrl"`
	LiveURL     string `json:"liveUrl"`
}

func (r createProjectReq) toInput() service.CreateProjectInput {
	return service.CreateProjectInput{
		Slug:        r.Slug,
		Name:        r.Name,
		Summary:     r.Summary,
		Description: r.Description,
		TechStack:   r.TechStack,
		RepoURL:     r.RepoURL,
		LiveURL:     r.LiveURL,
	}
}

// patchProjectReq is a sparse patch: absent fields stay nil and leave
// the stored value untouched.
type patchProjectReq struct {
	Slug        *string `json:"slug"`
	Name        *string `json:"name"`
	Summary     *string `json:"summary"`
	Description *string `json:"description"`
	TechStack   *string `json:"techStack"`
	RepoURL     *string `json:"repoUrl"`
	LiveURL     *string `json:"liveUrl"`
}

func (r patchProjectReq) toInput() service.PatchProjectInput {
	return service.PatchProjectInput{
		Slug:        r.Slug,
		Name:        r.Name,
		Summary:     r.Summary,
		Description: r.Description,
		TechStack:   r.TechStack,
		RepoURL:     r.RepoURL,
		LiveURL:     r.LiveURL,
	}
}

type createTaskReq struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Status        string `json:"status" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Priority      string `json:"priority" binding:"required"`
	TargetVersion string `json:"targetVersion"`
}

func (r createTaskReq) toInput() service.CreateTaskInput {
	return service.CreateTaskInput{
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		Type:          r.Type,
		Priority:      r.Priority,
		TargetVersion: r.TargetVersion,
	}
}

type patchTaskReq struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
	Type          *string `json:"type"`
	Priority      *string `json:"priority"`
	TargetVersion *string `json:"targetVersion"`
}

func (r patchTaskReq) toInput() service.PatchTaskInput {
	return service.PatchTaskInput{
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		Type:          r.Type,
		Priority:      r.Priority,
		TargetVersion: r.TargetVersion,
	}
}

type createUpdateReq struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}
