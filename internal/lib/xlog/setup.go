package xlog

import (
	"io"
	"log/slog"
)

// Setup installs the process wide logger.
//
// quiet wins over debug. Without either flag the default slog logger is kept,
// which only prints warnings and above.
func Setup(w io.Writer, quiet, debug bool) *slog.Logger {
	var l *slog.Logger

	switch {
	case quiet:
		l = DisabledLogger
	case debug:
		l = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		l = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	slog.SetDefault(l)
	return l
}
