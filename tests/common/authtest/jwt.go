//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"locker-reservation/internal/domain/operator"
	"locker-reservation/internal/pkg/config"
	"locker-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role operator.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(uuid.New(), role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role operator.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(uuid.New(), role, -time.Minute)
	require.NoError(t, err)
	return token
}
