package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasilika/portfolio-tracker-backend/internal/auth/service"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func protectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	admin := r.Group("/admin", AdminAuthMiddleware(testSecret, zerolog.Nop()))
	admin.GET("/ping", func(c *gin.Context) {
		user, _ := c.Get(ContextUserKey)
		c.JSON(http.StatusOK, gin.H{"user": user})
	})
	return r
}

func signToken(t *testing.T, roles []string, expiresIn time.Duration, secret []byte) string {
	t.Helper()
	now := time.Now().UTC()
	claims := service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.TokenIssuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/admin/ping", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAdminAuth_ValidToken(t *testing.T) {
	r := protectedRouter(t)
	token := signToken(t, []string{service.RoleAdmin}, time.Hour, testSecret)

	rr := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"user":"admin"`)
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(t)

	rr := doRequest(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing or invalid token")
}

func TestAdminAuth_MalformedHeader(t *testing.T) {
	r := protectedRouter(t)

	for _, header := range []string{"Bearer", "Bearer ", "Basic dXNlcjpwYXNz", "garbage"} {
		rr := doRequest(t, r, header)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", header)
	}
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	r := protectedRouter(t)
	token := signToken(t, []string{service.RoleAdmin}, -time.Minute, testSecret)

	rr := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	// The body never says why.
	assert.NotContains(t, rr.Body.String(), "expired")
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	r := protectedRouter(t)
	token := signToken(t, []string{service.RoleAdmin}, time.Hour, []byte("another-secret-another-secret-xx"))

	rr := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminAuth_MissingRole(t *testing.T) {
	r := protectedRouter(t)
	token := signToken(t, []string{"VIEWER"}, time.Hour, testSecret)

	rr := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "admin role required")
}
