package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/sanctumos/clawedroad/internal/domain/user"
	"github.com/sanctumos/clawedroad/internal/handler/httperr"
	"github.com/sanctumos/clawedroad/internal/pkg/jwt"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Abort(c, httperr.New(http.StatusUnauthorized, httperr.CodeUnauthorized, "Access token required"))
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, httperr.New(http.StatusUnauthorized, httperr.CodeUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, user.Role(claims.Role))
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
		})
		c.Next()
	}
}

// RequireStaff admits staff and admin accounts. Use after RequireAuth().
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return requireRole(func(r user.Role) bool { return r.IsStaff() })
}

// RequireSettlement admits the settlement worker account only.
func (m *AuthMiddleware) RequireSettlement() gin.HandlerFunc {
	return requireRole(func(r user.Role) bool { return r == user.RoleSettlement })
}

func requireRole(allowed func(user.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Mounted without RequireAuth.
			httperr.Abort(c, internalError)
			return
		}

		if !allowed(role) {
			httperr.Abort(c, httperr.New(http.StatusForbidden, httperr.CodeForbidden, "Insufficient permissions"))
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor returns the authenticated caller as the use cases expect it.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{UserID: userID, Role: role}, true
}
