package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, 2.0, c.LowBalanceThreshold)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.True(t, c.UsesDevSecret())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "PGX")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("LOW_BALANCE_THRESHOLD", "3.5")
	t.Setenv("JWT_SECRET", "s3cret")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, "pgx", c.DBDriver)
	assert.Equal(t, 2*time.Hour, c.TokenTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, c.AllowedOrigins)
	assert.Equal(t, 3.5, c.LowBalanceThreshold)
	assert.False(t, c.UsesDevSecret())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	_, err = Load("")
	assert.Error(t, err)
}
