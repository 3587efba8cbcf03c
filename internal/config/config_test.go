package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catebi/go-tax-declaration/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.App.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.App.HTTPTimeout)
	assert.Equal(t, "https://nbg.gov.ge", cfg.RateService.BaseURL)
	assert.Equal(t, uint64(3), cfg.RateService.ExponentialBackoff.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.RateService.ExponentialBackoff.InitialInterval)
	assert.False(t, cfg.Session.SkipLanguageSelection)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"app": {"env": "production", "http_port": 9000},
		"rate_service": {"base_url": "http://localhost:8081"},
		"session": {"skip_language_selection": true}
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9000, cfg.App.HTTPPort)
	assert.Equal(t, "http://localhost:8081", cfg.RateService.BaseURL)
	assert.True(t, cfg.Session.SkipLanguageSelection)

	// untouched keys keep their defaults
	assert.Equal(t, "10s", cfg.App.GracefulTimeout.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
