package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/estateoffice")
	t.Setenv("APP_ENV", "dev")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, "http://ip-api.com", cfg.GeoIPBaseURL)
	assert.Equal(t, 3*time.Second, cfg.GeoIPTimeout)
	assert.Equal(t, 30*time.Minute, cfg.WizardSessionTTL)
	assert.Equal(t, time.Minute, cfg.ReminderInterval)
	assert.Equal(t, time.Hour, cfg.ReminderWindow)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, "/uploads", cfg.UploadBaseURL)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("WIZARD_SESSION_TTL", "10m")
	t.Setenv("GEOIP_BASE_URL", "http://geo.internal/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Minute, cfg.WizardSessionTTL)
	assert.Equal(t, "http://geo.internal", cfg.GeoIPBaseURL)
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GEOIP_TIMEOUT", "trois secondes")

	_, err := Load()
	assert.ErrorContains(t, err, "GEOIP_TIMEOUT")
}

func TestLoadProdRejectsDefaultJWTSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-proper-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.AppEnv)
}
