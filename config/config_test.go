package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable the loader reads so the test observes the
// documented defaults regardless of the host environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MONGODB_URI", "MONGODB_DATABASE", "MONGODB_CONNECT_TIMEOUT",
		"JWT_SECRET", "JWT_TOKEN_DURATION",
		"PORT", "CLIENT_ORIGIN",
		"UPLOAD_DIR", "UPLOAD_MAX_BYTES",
	} {
		if value, exists := os.LookupEnv(key); exists {
			t.Setenv(key, value) // restores on cleanup
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "socialpost", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, DevJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5173", cfg.Server.ClientOrigin)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(5<<20), cfg.Uploads.MaxBytes)
}

func TestLoadConfig_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE", "posts_prod")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_TOKEN_DURATION", "24h")
	t.Setenv("PORT", "8080")
	t.Setenv("CLIENT_ORIGIN", "https://app.example.com")
	t.Setenv("UPLOAD_DIR", "/var/lib/socialpost/uploads")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "posts_prod", cfg.Mongo.Database)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://app.example.com", cfg.Server.ClientOrigin)
	assert.Equal(t, "/var/lib/socialpost/uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(1<<20), cfg.Uploads.MaxBytes)
}

func TestLoadConfig_CollectsErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_TOKEN_DURATION", "one-week")
	t.Setenv("UPLOAD_MAX_BYTES", "lots")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_TOKEN_DURATION")
	assert.Contains(t, err.Error(), "UPLOAD_MAX_BYTES")
}

func TestLoadConfig_RejectsNonPositiveUploadLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPLOAD_MAX_BYTES", "0")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}
