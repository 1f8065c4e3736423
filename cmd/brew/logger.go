package main

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	brew "github.com/goliatone/go-brew"
	"github.com/goliatone/go-brew/internal/config"
	"github.com/goliatone/go-brew/pkg/activity"
)

func newLogger(w io.Writer, settings config.Settings) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(settings.LogLevel))
	if err != nil {
		return zerolog.Logger{}, err
	}
	if strings.EqualFold(settings.LogFormat, "console") {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func buildLogger(logger zerolog.Logger) brew.BuildLogger {
	return brew.BuildLoggerFunc(func(event brew.BuildLogEvent) {
		var entry *zerolog.Event
		if event.Err != nil {
			entry = logger.Warn().Err(event.Err)
		} else {
			entry = logger.Debug()
		}
		entry = entry.
			Str("base", event.Request.Base).
			Str("size", event.Request.Size).
			Strs("condiments", event.Request.Condiments).
			Dur("duration", event.Duration)
		if event.ReceiptID != "" {
			entry = entry.Str("receipt", event.ReceiptID).Str("cost", event.Cost.StringFixed(2))
		}
		if event.HookErr != nil {
			entry = entry.AnErr("hook_error", event.HookErr)
		}
		entry.Msg("build")
	})
}

func activityHooks(logger zerolog.Logger) activity.Hooks {
	return activity.Hooks{
		activity.HookFunc(func(_ context.Context, event activity.Event) error {
			logger.Debug().
				Str("verb", event.Verb).
				Str("object_id", event.ObjectID).
				Str("channel", event.Channel).
				Fields(event.Metadata).
				Msg("activity")
			return nil
		}),
	}
}
