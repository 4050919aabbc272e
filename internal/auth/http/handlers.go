package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/vasilika/portfolio-tracker-backend/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
	limiter     *rate.Limiter
}

// NewHandler creates the login handler. Login attempts are throttled
// process-wide: with a single admin identity there is no legitimate
// burst of logins to accommodate.
func NewHandler(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
		limiter:     rate.NewLimiter(rate.Limit(1), 5),
	}
}

func (h *Handler) login(c *gin.Context) {
	if !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, token)
}
