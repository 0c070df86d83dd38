package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocalc/internal/config"
	"gocalc/internal/eval"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gocalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, uint32(eval.DefaultPrecision), cfg.Precision)
	assert.True(t, cfg.Tape)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "theme: nord\nprecision: 12\nlogLevel: debug\ntape: false\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, uint32(12), cfg.Precision)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Tape)
	assert.Equal(t, config.Default().LogDir, cfg.LogDir)
	require.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "colour: red\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "precision: [1, 2]\n"))
	assert.Error(t, err)
}

func TestValidateAcceptsMaxPrecision(t *testing.T) {
	cfg := config.Default()
	cfg.Precision = eval.MaxPrecision
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown theme", func(c *config.Config) { c.Theme = "neon" }},
		{"zero precision", func(c *config.Config) { c.Precision = 0 }},
		{"precision too large", func(c *config.Config) { c.Precision = eval.MaxPrecision + 1 }},
		{"huge precision", func(c *config.Config) { c.Precision = 4000000000 }},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
