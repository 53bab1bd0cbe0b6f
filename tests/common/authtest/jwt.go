//go:build e2e

package authtest

import (
	"testing"
	"time"

	"trust-rewards/internal/pkg/config"
	"trust-rewards/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tokens are minted directly: the identity service that normally issues them
// is outside this codebase.

func GenerateToken(t *testing.T, cfg config.JWTConfig, subjectID uuid.UUID, name, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	service := jwt.NewService(cfg.Secret, duration)
	token, err := service.GenerateToken(subjectID, name, role)
	require.NoError(t, err)
	return token
}

func WorkerToken(t *testing.T, cfg config.JWTConfig, workerID uuid.UUID, name string) string {
	t.Helper()
	return GenerateToken(t, cfg, workerID, name, jwt.RoleWorker)
}

func AdminToken(t *testing.T, cfg config.JWTConfig, adminID uuid.UUID) string {
	t.Helper()
	return GenerateToken(t, cfg, adminID, "Admin", jwt.RoleAdmin)
}

func ExpiredToken(t *testing.T, cfg config.JWTConfig, subjectID uuid.UUID, role string) string {
	t.Helper()

	service := jwt.NewService(cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(subjectID, "expired", role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
