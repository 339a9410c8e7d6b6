package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, content map[string]any) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))

	raw, err := yaml.Marshal(content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), raw, 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		viper.Reset()
	})
	viper.Reset()
}

func TestLoad_ReadsFileAndDefaults(t *testing.T) {
	writeConfigFile(t, map[string]any{
		"server": map[string]any{
			"port": 9090,
		},
		"database": map[string]any{
			"username": "disclosure",
			"database": "disclosure_test",
		},
		"auth": map[string]any{
			"jwt": map[string]any{
				"secret": "test-secret",
			},
		},
	})

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "disclosure", cfg.Database.Username)
	assert.Equal(t, "disclosure_test", cfg.Database.Database)
	assert.Equal(t, "test-secret", cfg.Auth.JWT.Secret)

	// Untouched sections fall back to defaults.
	assert.Equal(t, 15, cfg.Auth.JWT.AccessExpMinutes)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		viper.Reset()
	})
	viper.Reset()

	_, err = Load("development")
	assert.Error(t, err)
}

func TestGet_ReturnsLoadedConfig(t *testing.T) {
	writeConfigFile(t, map[string]any{
		"server": map[string]any{"port": 7070},
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Same(t, cfg, Get())
}
