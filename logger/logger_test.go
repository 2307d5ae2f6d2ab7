package logger_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reugn/go-quartz-cron/internal/assert"
	"github.com/reugn/go-quartz-cron/logger"
)

func TestSimpleLogger(t *testing.T) {
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", log.LstdFlags), logger.LevelInfo)

	l.Trace("Trace")
	assertEmpty(t, &b)
	l.Debug("Debug")
	assertEmpty(t, &b)

	l.Info("Info")
	assertNotEmpty(t, &b)
	l.Warn("Warn")
	assertNotEmpty(t, &b)
	l.Error("Error")
	assertNotEmpty(t, &b)
}

func TestSimpleLoggerOff(t *testing.T) {
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", log.LstdFlags), logger.LevelOff)

	assert.False(t, l.Enabled(logger.LevelError))
	l.Error("Error")
	assertEmpty(t, &b)
}

func TestSimpleLoggerFormat(t *testing.T) {
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", 0), logger.LevelTrace)

	l.Trace("Parsed cron expression", "expression", "0 0 0 1 * ?")
	msg := readAll(t, &b)
	assert.Equal(t, msg, "TRACE msg=Parsed cron expression, expression=0 0 0 1 * ?\n")

	l.Debug("Rejected cron expression", "expression", "* * * * Foo ?", "odd")
	msg = readAll(t, &b)
	assert.Equal(t, msg, "DEBUG msg=Rejected cron expression, expression=* * * * Foo ?, odd\n")
}

func TestSimpleLoggerRace(t *testing.T) {
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", 0), logger.LevelTrace)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Info("info")
			l.Warn("warn")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, len(lines), 16)
	for _, line := range lines {
		if !strings.HasPrefix(line, "INFO msg=info") && !strings.HasPrefix(line, "WARN msg=warn") {
			t.Fatalf("mismatched prefix: %s", line)
		}
	}
}

func TestSlogLogger(t *testing.T) {
	var b bytes.Buffer
	slogLogger := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{
		Level: logger.SlogLevel(logger.LevelDebug),
	}))
	l := logger.NewSlogLogger(context.Background(), slogLogger)

	l.Trace("Trace")
	assertEmpty(t, &b)

	l.Debug("Rejected cron expression", "expression", "0 0 * * * *")
	msg := readAll(t, &b)
	assert.Contains(t, msg, "level=DEBUG")
	assert.Contains(t, msg, `msg="Rejected cron expression"`)
	assert.Contains(t, msg, `expression="0 0 * * * *"`)
}

func TestZerologLogger(t *testing.T) {
	var b bytes.Buffer
	zl := zerolog.New(&b).Level(logger.ZerologLevel(logger.LevelDebug))
	l := logger.NewZerologLogger(zl)

	l.Trace("Trace")
	assertEmpty(t, &b)

	l.Debug("Rejected cron expression", "expression", "0/a 43 9 ? * 6,7,L",
		"error", errors.New("malformed expression"))
	msg := readAll(t, &b)
	assert.Contains(t, msg, `"level":"debug"`)
	assert.Contains(t, msg, `"message":"Rejected cron expression"`)
	assert.Contains(t, msg, `"expression":"0/a 43 9 ? * 6,7,L"`)
	assert.Contains(t, msg, `"error":"malformed expression"`)

	l.Info("odd", "key")
	assert.Contains(t, readAll(t, &b), `"!BADKEY":"key"`)
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, logger.ZerologLevel(logger.LevelTrace), zerolog.TraceLevel)
	assert.Equal(t, logger.ZerologLevel(logger.LevelDebug), zerolog.DebugLevel)
	assert.Equal(t, logger.ZerologLevel(logger.LevelInfo), zerolog.InfoLevel)
	assert.Equal(t, logger.ZerologLevel(logger.LevelWarn), zerolog.WarnLevel)
	assert.Equal(t, logger.ZerologLevel(logger.LevelError), zerolog.ErrorLevel)
	assert.Equal(t, logger.ZerologLevel(logger.LevelOff), zerolog.Disabled)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		expected logger.Level
	}{
		{"trace", logger.LevelTrace},
		{"DEBUG", logger.LevelDebug},
		{" info ", logger.LevelInfo},
		{"warning", logger.LevelWarn},
		{"warn", logger.LevelWarn},
		{"Error", logger.LevelError},
		{"off", logger.LevelOff},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			level, err := logger.ParseLevel(test.name)
			assert.IsNil(t, err)
			assert.Equal(t, level, test.expected)
		})
	}

	_, err := logger.ParseLevel("verbose")
	assert.NotNil(t, err)
	assert.Equal(t, logger.LevelWarn.String(), "warn")
}

func assertEmpty(t *testing.T, r io.Reader) {
	t.Helper()
	logMsg := readAll(t, r)
	if logMsg != "" {
		t.Fatalf("log msg is not empty: %s", logMsg)
	}
}

func assertNotEmpty(t *testing.T, r io.Reader) {
	t.Helper()
	logMsg := readAll(t, r)
	if logMsg == "" {
		t.Fatal("log msg is empty")
	}
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	bytes, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(bytes)
}
