package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGODB_URL", "DATABASE_NAME", "JWT_SECRET", "JWT_ALGORITHM",
		"JWT_EXPIRATION_HOURS", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "FRONTEND_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "owais_optics", cfg.DatabaseName)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 168, cfg.JWTExpirationHours)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.False(t, cfg.GoogleEnabled())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("non-numeric expiration", func(t *testing.T) {
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive expiration", func(t *testing.T) {
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-HMAC algorithm", func(t *testing.T) {
		t.Setenv("JWT_EXPIRATION_HOURS", "")
		t.Setenv("JWT_ALGORITHM", "RS256")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestGoogleEnabled(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.GoogleEnabled(), "secret missing")

	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.GoogleEnabled())
}
