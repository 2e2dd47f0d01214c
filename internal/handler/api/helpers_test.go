//go:build unit

package api_test

import (
	"net/http"

	"github.com/sanctumos/clawedroad/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

// fakeAuth stands in for the JWT middleware: any bearer token authenticates
// as the caller that *id and *role point to.
func fakeAuth(id *uuid.UUID, role *user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", *id)
		c.Set("user_role", *role)
		c.Next()
	}
}
