package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_URL", "postgres://user:pw@localhost/portfolio")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")

	cfg := Load()
	require.NotNil(t, cfg)
	assert.Equal(t, "postgres://user:pw@localhost/portfolio", cfg.DBURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "dev.db")
	t.Setenv("JWT_SECRET", "secret")
	// defaults only apply to unset variables
	for _, key := range []string{"PORT", "UPLOAD_DIR", "CORS_ORIGIN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "*", cfg.CORSOrigin)
}
