package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/preconsultation-backend/internal/config"
)

const serviceName = "preconsultation"

// NewLogger builds the process logger on stderr, tags every record with the
// service name and build version, and installs it with slog.SetDefault.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(
		slog.String("app", serviceName),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newHandler returns a JSON handler for format "json" and a text handler
// with source locations otherwise.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
