package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/model"
)

// Gin context keys set by Auth and read by handlers.
const (
	CtxUserID = "userID"
	CtxRole   = "userRole"
)

// Auth verifies the bearer token and stashes the identity claim in the
// request context. It performs no role check; that is RequireRole's job.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, model.Role(claims.Role))
		c.Next()
	}
}

// RequireRole rejects the request unless the verified role is one of the
// listed roles. Runs after Auth, before any handler logic.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(CtxRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		role := got.(model.Role)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
