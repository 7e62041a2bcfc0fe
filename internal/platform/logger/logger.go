// Package logger provides structured logging functionality for the application.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/portfolioz/server/internal/config"
	"github.com/portfolioz/server/internal/redact"
)

// scrubAttr redacts string attribute values that commonly carry sensitive
// data (errors, emails, URIs) before they are written out.
func scrubAttr(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case "error", "email", "uri":
		a.Value = slog.StringValue(redact.String(a.Value.String()))
	}
	return a
}

// Setup initializes the application's logging system from the provided
// configuration. It creates a structured JSON logger with the configured
// level, sets it as the process default and returns it.
func Setup(cfg config.ServerConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: scrubAttr,
	})
	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}
