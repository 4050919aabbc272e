package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vasilika/portfolio-tracker-backend/config"
	"github.com/vasilika/portfolio-tracker-backend/internal/auth/service"
)

func loginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	h := NewHandler(service.NewAuthService(config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "0123456789abcdef0123456789abcdef",
		TokenTTL:          2 * time.Hour,
	}))

	r := gin.New()
	h.Register(r.Group("/auth"))
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req, err := http.NewRequest(http.MethodPost, "/auth/login", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLoginEndpoint_Success(t *testing.T) {
	r := loginRouter(t)

	rr := postLogin(t, r, gin.H{"username": "admin", "password": "correct horse"})
	require.Equal(t, http.StatusOK, rr.Code)

	var tok service.Token
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tok))
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.NotEmpty(t, tok.AccessToken)
	assert.True(t, tok.ExpiresAt.After(time.Now()))
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	r := loginRouter(t)

	rr := postLogin(t, r, gin.H{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid credentials")
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	r := loginRouter(t)

	rr := postLogin(t, r, gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginEndpoint_Throttled(t *testing.T) {
	r := loginRouter(t)

	// The limiter allows a burst of 5; the attempts beyond it get 429.
	var last int
	for i := 0; i < 8; i++ {
		rr := postLogin(t, r, gin.H{"username": "admin", "password": "nope"})
		last = rr.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
