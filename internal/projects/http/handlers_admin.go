package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
	"github.com/vasilika/portfolio-tracker-backend/internal/projects/service"
)

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, "invalid body"))
		return
	}

	p, err := h.admin.CreateProject(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	// Location points at the public details endpoint.
	c.Header("Location", "/api/projects/"+p.Slug)
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) patchProject(c *gin.Context) {
	id, err := pathUUID(c, "projectId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req patchProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, "invalid body"))
		return
	}

	p, err := h.admin.PatchProject(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, err := pathUUID(c, "projectId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.admin.DeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) createTask(c *gin.Context) {
	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, "invalid body"))
		return
	}

	t, err := h.admin.CreateTask(c.Request.Context(), projectID, req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// patchScopedTask handles PATCH under /admin/projects/:projectId/tasks:
// the path project must own the task.
func (h *Handler) patchScopedTask(c *gin.Context) {
	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.patchTask(c, &projectID)
}

// patchUnscopedTask handles PATCH /admin/tasks/:taskId.
func (h *Handler) patchUnscopedTask(c *gin.Context) {
	h.patchTask(c, nil)
}

func (h *Handler) patchTask(c *gin.Context, scope *uuid.UUID) {
	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req patchTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, "invalid body"))
		return
	}

	t, err := h.admin.PatchTask(c.Request.Context(), taskID, scope, req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) deleteScopedTask(c *gin.Context) {
	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.deleteTask(c, &projectID)
}

func (h *Handler) deleteUnscopedTask(c *gin.Context) {
	h.deleteTask(c, nil)
}

func (h *Handler) deleteTask(c *gin.Context, scope *uuid.UUID) {
	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.admin.DeleteTask(c.Request.Context(), taskID, scope); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) createUpdate(c *gin.Context) {
	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req createUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, "invalid body"))
		return
	}

	u, err := h.admin.CreateUpdate(c.Request.Context(), projectID, service.CreateUpdateInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) deleteUpdate(c *gin.Context) {
	updateID, err := pathUUID(c, "updateId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.admin.DeleteUpdate(c.Request.Context(), updateID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathUUID(c *gin.Context, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(key))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", domain.ErrInvalidArgument, key)
	}
	return id, nil
}
