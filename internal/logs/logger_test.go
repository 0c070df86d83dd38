package logs_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocalc/internal/logs"
)

func TestFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, err := logs.New(logs.Options{Dir: dir, Level: slog.LevelInfo})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("evaluated", "expr", "2+2", "result", "4")
	require.NoError(t, logger.Close())

	path := logger.Path()
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "gocalc_"))
	assert.True(t, strings.HasSuffix(path, ".log"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=evaluated")
	assert.Contains(t, string(data), "expr=2+2")
	assert.NotContains(t, string(data), "hidden")
}

func TestDiscardLogger(t *testing.T) {
	logger, err := logs.New(logs.Options{})
	require.NoError(t, err)
	assert.Empty(t, logger.Path())

	logger.Error("goes nowhere")
	assert.NoError(t, logger.Close())
}

func TestUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := logs.New(logs.Options{Dir: filepath.Join(file, "logs")})
	assert.Error(t, err)
}
