package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FTRACKER_LOG_LEVEL", "")
	t.Setenv("FTRACKER_LOG_FORMAT", "")
	t.Setenv("FTRACKER_METRICS_DUMP", "")

	cfg := Load()
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, LogFormatText, cfg.LogFormat)
	require.False(t, cfg.DumpMetrics)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FTRACKER_LOG_LEVEL", "debug")
	t.Setenv("FTRACKER_LOG_FORMAT", "JSON")
	t.Setenv("FTRACKER_METRICS_DUMP", "true")

	cfg := Load()
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, LogFormatJSON, cfg.LogFormat)
	require.True(t, cfg.DumpMetrics)
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("FTRACKER_LOG_LEVEL", "loud")
	t.Setenv("FTRACKER_LOG_FORMAT", "xml")
	t.Setenv("FTRACKER_METRICS_DUMP", "maybe")

	cfg := Load()
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, LogFormatText, cfg.LogFormat)
	require.False(t, cfg.DumpMetrics)
}
