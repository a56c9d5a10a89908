package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/festdays/internal/application/settings"
	"go.uber.org/zap"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "festdays.log")
	logger, err := New(settings.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("feed rows dropped", zap.Int("dropped", 2))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "feed rows dropped"))
	assert.True(t, strings.Contains(string(data), `"dropped":2`))
}

func TestNew_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "festdays.log")
	logger, err := New(settings.LogConfig{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(settings.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)

	_, err = New(settings.LogConfig{File: "  "})
	assert.Error(t, err)
}

func TestNewOrNop(t *testing.T) {
	logger := NewOrNop(settings.LogConfig{Level: "loud"})
	require.NotNil(t, logger)
	logger.Info("discarded")
}
