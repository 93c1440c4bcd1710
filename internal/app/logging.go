package app

import (
	"io"
	"log/slog"
)

// setupLogging installs a text slog handler on w as the default logger.
func setupLogging(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
