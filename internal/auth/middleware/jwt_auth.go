package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/vasilika/portfolio-tracker-backend/internal/auth/service"
)

// ContextUserKey is where the authenticated admin username is stored in
// the gin context.
const ContextUserKey = "admin_user"

// AdminAuthMiddleware validates bearer tokens and requires the ADMIN
// role. Missing, malformed and expired tokens all produce the same 401
// body; the concrete reason only shows up in debug logs. Every request
// re-validates the token, nothing is cached between requests.
func AdminAuthMiddleware(secret []byte, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			unauthorized(c, log, "missing bearer token")
			return
		}

		claims := &service.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			reason := "invalid token"
			if err != nil {
				reason = err.Error()
			}
			unauthorized(c, log, reason)
			return
		}

		if !slices.Contains(claims.Roles, service.RoleAdmin) {
			log.Debug().Str("path", c.Request.URL.Path).Str("subject", claims.Subject).Msg("token lacks admin role")
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims.Subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context, log zerolog.Logger, reason string) {
	log.Debug().Str("path", c.Request.URL.Path).Str("reason", reason).Msg("request rejected")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
	c.Abort()
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
