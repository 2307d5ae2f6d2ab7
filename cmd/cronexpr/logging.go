package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/reugn/go-quartz-cron/logger"
)

// newLogger builds the diagnostic logger selected by the --log-level and
// --log-format flags. Diagnostics always go to w, never to the report.
func newLogger(levelName, format string, w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	if level >= logger.LevelOff {
		return logger.NoOpLogger{}, nil
	}

	switch format {
	case "text":
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: logger.SlogLevel(level)})
		return logger.NewSlogLogger(context.Background(), slog.New(handler)), nil
	case "json":
		handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logger.SlogLevel(level)})
		return logger.NewSlogLogger(context.Background(), slog.New(handler)), nil
	case "console":
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
			Level(logger.ZerologLevel(level)).
			With().Timestamp().Logger()
		return logger.NewZerologLogger(zl), nil
	case "plain":
		return logger.NewSimpleLogger(log.New(w, "", log.LstdFlags), level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
