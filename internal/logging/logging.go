package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the logger returned by New on stdout as the slog default.
func Init(service, format, level string) *slog.Logger {
	logger := New(os.Stdout, service, format, level)
	slog.SetDefault(logger)
	return logger
}

// New builds a JSON (default) or text slog logger tagged with service.
// Unknown formats fall back to json and unknown levels to info, with a warning.
func New(w io.Writer, service, format, level string) *slog.Logger {
	format = strings.ToLower(strings.TrimSpace(format))

	lvl, badLevel := slog.LevelInfo, false
	if s := strings.TrimSpace(level); s != "" {
		if err := lvl.UnmarshalText([]byte(s)); err != nil {
			lvl, badLevel = slog.LevelInfo, true
		}
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With("service", service)
	if format != "" && format != "json" && format != "text" {
		logger.Warn("unknown log format, defaulting to json", "format", format)
	}
	if badLevel {
		logger.Warn("unknown log level, defaulting to info", "level", level)
	}
	return logger
}
