package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/ftracker/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.Config{LogLevel: slog.LevelInfo, LogFormat: config.LogFormatJSON}, &buf)

	logger.Debug("hidden")
	logger.Info("training processed", "code", "RUN")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "training processed", record["msg"])
	require.Equal(t, "RUN", record["code"])
}

func TestNewTextHasNoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.Config{LogLevel: slog.LevelDebug, LogFormat: config.LogFormatText}, &buf)

	logger.Debug("training processed", "code", "SWM")

	out := buf.String()
	require.Contains(t, out, "training processed")
	require.Contains(t, out, "code=SWM")
	require.NotContains(t, out, "\x1b[")
}
