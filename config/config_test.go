package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "portal")
	t.Setenv("UPLOAD_DIR", "/var/lib/lexcomply/uploads")
	t.Setenv("JWT_SECRET", "prod-secret")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "/var/lib/lexcomply/uploads", cfg.UploadDir)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "lexcomply")
	t.Setenv("DB_SSLMODE", "disable")

	assert.Equal(t,
		"host=localhost user=portal password=pw dbname=lexcomply port=5432 sslmode=disable TimeZone=UTC",
		Load().DSN())
}
