package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/cardbook/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		err   bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "cardbook.log")
	logger, closeLog, err := logging.Setup(path, "debug")
	require.NoError(t, err)

	logger.Debug("filters applied", slog.Int("visible_sets", 2))
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filters applied")
	assert.Contains(t, string(data), "visible_sets=2")
}

func TestSetup_LevelFilters(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "cardbook.log")
	logger, closeLog, err := logging.Setup(path, "warn")
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("reload failed")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "reload failed")
}

func TestSetup_NoPathDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger, closeLog, err := logging.Setup("", "")
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeLog())
}

func TestSetup_BadLevel(t *testing.T) {
	_, _, err := logging.Setup("", "loud")
	assert.Error(t, err)
}
