package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"
	"ttvcli/app/client/twitch"
	"ttvcli/app/cmd"
	"ttvcli/app/service/clips"
	"ttvcli/app/service/streamer"
	"ttvcli/app/service/vod"
	"ttvcli/pkg/config"
	sentry2 "ttvcli/pkg/sentry"
	"ttvcli/pkg/tlog"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func bootstrap(cfgPath string) (*do.Injector, error) {
	di := do.New()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = tlog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	if err = sentry2.Init(cfg); err != nil {
		slog.Error("Sentry initialization failed", slog.Any("error", err))
	}

	do.Provide(di, twitch.NewClient)
	do.Provide(di, vod.New)
	do.Provide(di, clips.New)
	do.Provide(di, streamer.New)

	return di, nil
}

func main() {
	appCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	root := cmd.NewRoot(bootstrap)

	executed, err := root.ExecuteContextC(appCtx)
	if err != nil {
		ctx := appCtx
		if executed != nil && executed.Context() != nil {
			ctx = executed.Context()
		}
		slog.ErrorContext(ctx, "Command failed", slog.Any("error", err))
		sentry2.Capture(ctx, err)
	}

	sentry.Flush(2 * time.Second)

	if err != nil {
		os.Exit(1)
	}
}
