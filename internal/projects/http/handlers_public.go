package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
	"github.com/vasilika/portfolio-tracker-backend/internal/projects/service"
)

// Handler serves the project routes, public reads and admin writes.
type Handler struct {
	query *service.QueryService
	admin *service.AdminService
	log   zerolog.Logger
}

// NewHandler creates the projects handler.
func NewHandler(query *service.QueryService, admin *service.AdminService, log zerolog.Logger) *Handler {
	return &Handler{query: query, admin: admin, log: log}
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.query.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) details(c *gin.Context) {
	details, err := h.query.GetDetails(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) detailsPaged(c *gin.Context) {
	taskPage, err := pageRequest(c, "tasksPage", "tasksSize", 10)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	updatePage, err := pageRequest(c, "updatesPage", "updatesSize", 5)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	details, err := h.query.GetDetailsPaged(
		c.Request.Context(),
		c.Param("slug"),
		c.Query("status"),
		c.Query("type"),
		c.Query("priority"),
		taskPage,
		updatePage,
	)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func pageRequest(c *gin.Context, pageKey, sizeKey string, defaultSize int) (service.PageRequest, error) {
	page, err := intQuery(c, pageKey, 0)
	if err != nil {
		return service.PageRequest{}, err
	}
	size, err := intQuery(c, sizeKey, defaultSize)
	if err != nil {
		return service.PageRequest{}, err
	}
	return service.PageRequest{Page: page, Size: size}, nil
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidArgument, key)
	}
	return n, nil
}
