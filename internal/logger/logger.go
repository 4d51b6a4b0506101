package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New builds the process logger and installs it as the slog default.
// Production gets JSON lines for log shipping; anything else gets the
// human-readable text handler.
func New(appEnv string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}
