// Package config centralises configuration parsing for the tracker CLI.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config captures runtime configuration values for diagnostics. None of them
// affect the training formulas or the rendered summaries.
type Config struct {
	LogLevel    slog.Level
	LogFormat   string
	DumpMetrics bool // Write the Prometheus exposition to stderr after a run.
}

// Load reads environment variables into Config, applying defaults suitable for interactive use.
func Load() Config {
	return Config{
		LogLevel:    getLevelEnv("FTRACKER_LOG_LEVEL", slog.LevelInfo),
		LogFormat:   getFormatEnv("FTRACKER_LOG_FORMAT", LogFormatText),
		DumpMetrics: getBoolEnv("FTRACKER_METRICS_DUMP", false),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getLevelEnv(key string, fallback slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv(key, fallback.String()))); err != nil {
		return fallback
	}
	return level
}

func getFormatEnv(key, fallback string) string {
	switch value := strings.ToLower(strings.TrimSpace(getEnv(key, fallback))); value {
	case LogFormatText, LogFormatJSON:
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
