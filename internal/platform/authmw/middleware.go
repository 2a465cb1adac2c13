// Package authmw provides the Gin middleware that resolves bearer tokens.
package authmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"profiles_backend/internal/api"
)

// ContextUserID is the Gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// TokenResolver resolves an opaque bearer token to the bound user ID.
// Defined here on the consumer side; the identity usecase provides it.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (uint, error)
}

// AuthRequired returns a Gin middleware function that resolves the bearer
// token from the Authorization header and restricts access to authenticated
// users only.
func AuthRequired(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Resolve the token against the store
		userID, err := resolver.Resolve(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		// 3. Expose the acting user to downstream handlers
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
