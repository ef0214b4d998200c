package config

import (
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger configured for the given environment.
// Production uses a JSON handler; otherwise a text handler. LOG_LEVEL may
// be: debug, info, warn, error (default: info). Every record carries a
// "service" attribute so the booking API is identifiable in shared sinks.
func NewLogger(environment string) *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With("service", "letsbookit")
}
