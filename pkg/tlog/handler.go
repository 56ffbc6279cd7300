package tlog

import (
	"context"
	"log/slog"
	"ttvcli/pkg/util"
)

var contextKeys = []util.ContextKey{
	util.RequestIDContextKey,
	util.CommandContextKey,
}

// contextHandler copies well-known context values onto every record.
type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, key := range contextKeys {
			if value, ok := ctx.Value(key).(string); ok && value != "" {
				r.AddAttrs(slog.String(string(key), value))
			}
		}
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{h.Handler.WithGroup(name)}
}
