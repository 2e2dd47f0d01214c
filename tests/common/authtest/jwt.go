//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/user"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := h.service(h.cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.cfg.Secret, -time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// SignedWith issues a token under a foreign secret.
func (h *JWTHelper) SignedWith(t *testing.T, secret string, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(secret, time.Hour).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) service(secret string, d time.Duration) *jwt.Service {
	return jwt.NewService(secret, d, jwt.WithIssuer(h.cfg.Issuer))
}
