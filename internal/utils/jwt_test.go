package utils

import (
	"testing"
	"time"

	"sebengine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminToken_RoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateAdminToken("test-secret", "draft-1", time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := ParseAdminToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "draft-1", claims.DraftID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.HasPermission(models.PermissionSettingsWrite))
}

func TestAdminToken_Rejected(t *testing.T) {
	token, _, err := GenerateAdminToken("test-secret", "draft-1", time.Minute)
	require.NoError(t, err)

	_, err = ParseAdminToken("other-secret", token)
	assert.Error(t, err)

	expired, _, err := GenerateAdminToken("test-secret", "draft-1", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAdminToken("test-secret", expired)
	assert.Error(t, err)

	_, _, err = GenerateAdminToken("", "draft-1", time.Minute)
	assert.Error(t, err)
}

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret(32)
	require.NoError(t, err)
	b, err := GenerateSecret(32)
	require.NoError(t, err)
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
