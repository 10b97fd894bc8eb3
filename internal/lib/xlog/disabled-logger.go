package xlog

import (
	"context"
	"log/slog"
)

var DisabledLogger = slog.New(DisabledLogHandler{})

// DisabledLogHandler drops every record
type DisabledLogHandler struct{}

func (d DisabledLogHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (d DisabledLogHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (d DisabledLogHandler) WithAttrs([]slog.Attr) slog.Handler {
	return d
}

func (d DisabledLogHandler) WithGroup(string) slog.Handler {
	return d
}
