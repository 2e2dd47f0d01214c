//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/user"
	"github.com/sanctumos/clawedroad/internal/handler/middleware"
	"github.com/sanctumos/clawedroad/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

func newAuthRouter(t *testing.T, chain ...func(*middleware.AuthMiddleware) gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(jwt.NewService(secret, time.Hour))

	handlers := []gin.HandlerFunc{m.RequireAuth()}
	for _, c := range chain {
		handlers = append(handlers, c(m))
	}
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID.String(), "role": actor.Role.String()})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, s string, id uuid.UUID, role user.Role, d time.Duration) string {
	t.Helper()
	tok, err := jwt.NewService(s, d).GenerateToken(id, role)
	require.NoError(t, err)
	return tok
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	tests := []struct {
		name   string
		token  string
		expect int
	}{
		{"valid token", token(t, secret, id, user.RoleUser, time.Hour), http.StatusOK},
		{"missing token", "", http.StatusUnauthorized},
		{"expired token", token(t, secret, id, user.RoleUser, -time.Minute), http.StatusUnauthorized},
		{"foreign secret", token(t, "other", id, user.RoleUser, time.Hour), http.StatusUnauthorized},
		{"garbage", "not.a.jwt", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := get(newAuthRouter(t), tt.token)
			assert.Equal(t, tt.expect, w.Code)
			if tt.expect == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"`+id.String()+`","role":"user"}`, w.Body.String())
				return
			}
			assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()
	staff := func(m *middleware.AuthMiddleware) gin.HandlerFunc { return m.RequireStaff() }
	settlement := func(m *middleware.AuthMiddleware) gin.HandlerFunc { return m.RequireSettlement() }

	tests := []struct {
		name   string
		guard  func(*middleware.AuthMiddleware) gin.HandlerFunc
		role   user.Role
		expect int
	}{
		{"staff passes staff guard", staff, user.RoleStaff, http.StatusOK},
		{"admin passes staff guard", staff, user.RoleAdmin, http.StatusOK},
		{"user blocked by staff guard", staff, user.RoleUser, http.StatusForbidden},
		{"worker blocked by staff guard", staff, user.RoleSettlement, http.StatusForbidden},
		{"worker passes settlement guard", settlement, user.RoleSettlement, http.StatusOK},
		{"staff blocked by settlement guard", settlement, user.RoleStaff, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := get(newAuthRouter(t, tt.guard), token(t, secret, uuid.New(), tt.role, time.Hour))
			assert.Equal(t, tt.expect, w.Code)
		})
	}
}
