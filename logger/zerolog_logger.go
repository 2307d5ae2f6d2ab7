package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger implements the [Logger] interface by delegating to a
// [zerolog.Logger]. Key/value args are attached as event fields; a trailing
// key without a value is recorded under "!BADKEY".
type ZerologLogger struct {
	logger zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// NewZerologLogger returns a new [ZerologLogger].
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// ZerologLevel maps a Level to the corresponding zerolog level.
func ZerologLevel(level Level) zerolog.Level {
	switch {
	case level >= LevelOff:
		return zerolog.Disabled
	case level >= LevelError:
		return zerolog.ErrorLevel
	case level >= LevelWarn:
		return zerolog.WarnLevel
	case level >= LevelInfo:
		return zerolog.InfoLevel
	case level >= LevelDebug:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}

// Trace logs at the trace level.
func (l *ZerologLogger) Trace(msg string, args ...any) {
	l.log(l.logger.Trace(), msg, args)
}

// Debug logs at the debug level.
func (l *ZerologLogger) Debug(msg string, args ...any) {
	l.log(l.logger.Debug(), msg, args)
}

// Info logs at the info level.
func (l *ZerologLogger) Info(msg string, args ...any) {
	l.log(l.logger.Info(), msg, args)
}

// Warn logs at the warn level.
func (l *ZerologLogger) Warn(msg string, args ...any) {
	l.log(l.logger.Warn(), msg, args)
}

// Error logs at the error level.
func (l *ZerologLogger) Error(msg string, args ...any) {
	l.log(l.logger.Error(), msg, args)
}

func (l *ZerologLogger) log(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	n := len(args)
	for i := 0; i < n; i += 2 {
		if i+1 == n {
			e.Interface("!BADKEY", args[i])
			break
		}
		key := fmt.Sprint(args[i])
		switch value := args[i+1].(type) {
		case error:
			e.AnErr(key, value)
		case string:
			e.Str(key, value)
		default:
			e.Interface(key, value)
		}
	}
	e.Msg(msg)
}
