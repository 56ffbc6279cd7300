package tlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"ttvcli/pkg/build"
	"ttvcli/pkg/config"

	slogmulti "github.com/samber/slog-multi"
	slogtelegram "github.com/samber/slog-telegram/v2"
)

// Init installs the default logger. Logs go to stderr so stdout stays free for command output.
func Init(cfg *config.Config) error {
	return InitWriter(cfg, os.Stderr)
}

func InitWriter(cfg *config.Config, w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logHandlers := []slog.Handler{slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   level == slog.LevelDebug,
		Level:       level,
		ReplaceAttr: nil,
	})}

	if cfg.Log.Telegram.Token != "" && cfg.Log.Telegram.ChatID != "" {
		logHandlers = append(logHandlers, slogtelegram.Option{
			Level:     slog.LevelError,
			Token:     cfg.Log.Telegram.Token,
			Username:  cfg.Log.Telegram.ChatID,
			AddSource: true,
		}.NewTelegramHandler())
	}

	multiHandler := slogmulti.Fanout(logHandlers...)
	ctxHandler := &contextHandler{multiHandler}

	logger := slog.New(ctxHandler).With(
		slog.String("app", "ttvcli"),
		slog.String("app_tag", build.Tag),
	)
	slog.SetDefault(logger)

	return nil
}
