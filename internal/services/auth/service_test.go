package auth

import (
	"context"
	"testing"
	"time"

	"sebengine/internal/config"
	"sebengine/internal/models"
	"sebengine/internal/repositories"
	"sebengine/internal/services/settings"
	"sebengine/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSettings(t *testing.T) *settings.Service {
	t.Helper()
	svc, err := settings.NewService(context.Background(), repositories.NewMemorySettingsRepository(), time.Hour)
	require.NoError(t, err)
	return svc
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		JWTSecret:       "test-secret",
		AdminSessionTTL: 10 * time.Minute,
		AdminPasscode:   "332",
	}
}

func TestLogin(t *testing.T) {
	settingsSvc := newSettings(t)
	svc, err := NewService(testConfig(), settingsSvc)
	require.NoError(t, err)

	t.Run("correct passcode stages a draft", func(t *testing.T) {
		sess, err := svc.Login("332")
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)

		claims, err := utils.ParseAdminToken("test-secret", sess.Token)
		require.NoError(t, err)
		assert.Equal(t, sess.Draft.ID, claims.DraftID)

		d, err := settingsSvc.Draft(sess.Draft.ID)
		require.NoError(t, err)
		assert.True(t, d.Settings.Equal(settingsSvc.Load()))
	})

	t.Run("wrong passcode denied", func(t *testing.T) {
		for _, attempt := range []string{"", "333", "3320", " 332"} {
			sess, err := svc.Login(attempt)
			assert.ErrorIs(t, err, ErrInvalidCredential, attempt)
			assert.Nil(t, sess)
		}
		assert.True(t, settingsSvc.Load().Equal(models.DefaultSettings()))
	})

	t.Run("no lockout after failures", func(t *testing.T) {
		_, err := svc.Login("000")
		require.Error(t, err)
		_, err = svc.Login("332")
		assert.NoError(t, err)
	})
}

func TestNewService_PasscodeHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.AdminPasscodeHash = string(hash)
	svc, err := NewService(cfg, newSettings(t))
	require.NoError(t, err)

	_, err = svc.Login("332")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = svc.Login("s3cret")
	assert.NoError(t, err)

	cfg.AdminPasscodeHash = "plaintext"
	_, err = NewService(cfg, newSettings(t))
	assert.Error(t, err)
}
