package sentry

import (
	"context"
	"log/slog"
	"ttvcli/pkg/build"
	"ttvcli/pkg/config"
	"ttvcli/pkg/util"

	"github.com/getsentry/sentry-go"
)

func Init(cfg *config.Config) error {
	if cfg.Sentry.DSN == "" {
		slog.Debug("Sentry DSN not configured, skipping initialization")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Release:          build.Tag,
		AttachStacktrace: true,
	})
	if err != nil {
		return err
	}

	slog.Debug("Sentry initialized successfully",
		slog.String("environment", cfg.Sentry.Environment),
		slog.String("release", build.Tag),
	)

	return nil
}

// Capture reports err tagged with the request id and command found in ctx.
// It is a no-op when Sentry was never initialized.
func Capture(ctx context.Context, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		for _, key := range []util.ContextKey{util.RequestIDContextKey, util.CommandContextKey} {
			if value, ok := ctx.Value(key).(string); ok && value != "" {
				scope.SetTag(string(key), value)
			}
		}
	})
	hub.CaptureException(err)
}
