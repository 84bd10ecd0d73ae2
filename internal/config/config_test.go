package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pathsig/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultLevel, cfg.Level)
	assert.Equal(t, "walk", cfg.Generator.Kind)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathsig.yaml")
	cfg := config.DefaultConfig()
	cfg.Level = 4
	cfg.TimeAugment = true
	cfg.Generator.Kind = "gbm"
	require.NoError(t, config.Save(path, cfg))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: 7\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Window)
	assert.Equal(t, config.DefaultLevel, cfg.Level)
	assert.Equal(t, config.DefaultLength, cfg.Generator.Length)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: [1, 2\n"), 0644))
	_, err = config.Load(path)
	assert.Error(t, err)
}

// TestPrecedence: file values beat defaults, env beats file.
func TestPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathsig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: 2\nwindow: 9\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyEnv(lookupFrom(map[string]string{
		config.EnvLevel:       "5",
		config.EnvTimeAugment: "true",
		config.EnvResync:      "",
	})))

	assert.Equal(t, 5, cfg.Level, "env overrides file")
	assert.Equal(t, 9, cfg.Window, "file overrides default")
	assert.True(t, cfg.TimeAugment)
	assert.Equal(t, 0, cfg.Resync, "empty env value is ignored")
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.ErrorIs(t, cfg.ApplyEnv(lookupFrom(map[string]string{config.EnvWindow: "ten"})), config.ErrInvalid)
	assert.ErrorIs(t, cfg.ApplyEnv(lookupFrom(map[string]string{config.EnvTimeAugment: "maybe"})), config.ErrInvalid)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PATHSIG_TEST_WINDOW=11\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("PATHSIG_TEST_WINDOW") })

	require.NoError(t, config.LoadEnv(filepath.Join(dir, "absent.env"), envFile))
	assert.Equal(t, "11", os.Getenv("PATHSIG_TEST_WINDOW"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"level", func(c *config.Config) { c.Level = 0 }},
		{"window", func(c *config.Config) { c.Window = 1 }},
		{"resync", func(c *config.Config) { c.Resync = -1 }},
		{"dim", func(c *config.Config) { c.Generator.Dim = 0 }},
		{"kind", func(c *config.Config) { c.Generator.Kind = "sine" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
