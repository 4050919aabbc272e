package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:slug", h.details)
	rg.GET("/:slug/paged", h.detailsPaged)
}

// RegisterAdmin attaches the write routes. The caller is expected to
// guard the group with the admin auth middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/projects", h.createProject)
	rg.PATCH("/projects/:projectId", h.patchProject)
	rg.DELETE("/projects/:projectId", h.deleteProject)

	rg.POST("/projects/:projectId/tasks", h.createTask)
	rg.PATCH("/projects/:projectId/tasks/:taskId", h.patchScopedTask)
	rg.DELETE("/projects/:projectId/tasks/:taskId", h.deleteScopedTask)
	rg.POST("/projects/:projectId/updates", h.createUpdate)

	rg.PATCH("/tasks/:taskId", h.patchUnscopedTask)
	rg.DELETE("/tasks/:taskId", h.deleteUnscopedTask)
	rg.DELETE("/updates/:updateId", h.deleteUpdate)
}
