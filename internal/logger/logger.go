// Package logger wraps zerolog with the level and format conventions used by
// the cardsearch binaries.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type contextKey string

const (
	JSONLoggingFormat    = "json"
	ConsoleLoggingFormat = "console"

	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarn     = "warn"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelDisabled = "disabled"

	ContextKeyQueryToken contextKey = "queryToken"
)

type Logger struct {
	zerolog.Logger
}

// New returns a logger writing to stderr. Standard output is reserved for
// command results.
func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stderr)
}

func NewWithWriter(level, format string, w io.Writer) Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})

	if strings.ToLower(format) == JSONLoggingFormat {
		logger = zerolog.New(w)
	}

	logger = logger.Level(ParseLevel(level)).With().Timestamp().Logger()

	return Logger{
		Logger: logger,
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelWarn, LogLevelWarning:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	case LogLevelDisabled:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// WithQueryToken stores a query token in ctx for WithContext to pick up.
func WithQueryToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextKeyQueryToken, token)
}

// WithContext returns a child logger carrying the query token found in ctx.
func (l Logger) WithContext(ctx context.Context) zerolog.Logger {
	logger := l.Logger

	if token, ok := ctx.Value(ContextKeyQueryToken).(string); ok && token != "" {
		logger = logger.With().Str("query_token", token).Logger()
	}

	return logger
}
