package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multicalc/loancalc/internal/config"
	"github.com/multicalc/loancalc/internal/output"
)

func TestSettingsFileDrivesDefaults(t *testing.T) {
	cfg, err := config.LoadSettings("../testdata/settings.toml")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.General.DefaultFormat)
	assert.True(t, cfg.General.Verbose)
	assert.Equal(t, "/var/lib/loancalc", cfg.DataDir())
	assert.Equal(t, 2, cfg.Storage.RedisDB)
	assert.Empty(t, cfg.Storage.RedisAddr)
	assert.NotNil(t, output.GetFormatterByName(cfg.General.DefaultFormat))
}

func TestSettingsRoundTripThroughXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	path := config.SettingsPath()
	assert.Equal(t, filepath.Join(dir, "loancalc", "config.toml"), path)

	cfg := config.DefaultSettings()
	cfg.General.DefaultFormat = "html"
	require.NoError(t, config.SaveSettings(path, cfg))

	loaded, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "html", loaded.General.DefaultFormat)
	assert.Equal(t, filepath.Join(dir, "data", "loancalc"), loaded.DataDir())
}
