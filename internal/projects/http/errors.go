package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

// respondError maps domain errors to the API error shape. Storage and
// other unexpected failures collapse into a generic 500 with the cause
// logged, never echoed to the caller.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := http.StatusInternalServerError
	label := "Internal server error"
	message := "unexpected error"

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
		label = "Bad request"
		message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		label = "Not found"
		message = "resource not found"
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		label = "Conflict"
		message = err.Error()
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}

	c.JSON(status, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    status,
		"error":     label,
		"message":   message,
		"path":      c.Request.URL.Path,
	})
}
