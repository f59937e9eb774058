package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cardsearch/internal/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		level  string
		format string
		want   zerolog.Level
	}{
		{
			name:   "creates logger with debug level",
			level:  logger.LogLevelDebug,
			format: logger.ConsoleLoggingFormat,
			want:   zerolog.DebugLevel,
		},
		{
			name:   "creates logger with json format",
			level:  logger.LogLevelWarning,
			format: logger.JSONLoggingFormat,
			want:   zerolog.WarnLevel,
		},
		{
			name:   "creates disabled logger",
			level:  logger.LogLevelDisabled,
			format: logger.JSONLoggingFormat,
			want:   zerolog.Disabled,
		},
		{
			name:   "creates logger with default level for unknown",
			level:  "unknown",
			format: logger.ConsoleLoggingFormat,
			want:   zerolog.InfoLevel,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			log := logger.New(tc.level, tc.format)
			assert.Equal(t, tc.want, log.GetLevel())
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, &buf)

	log.Debug().Msg("hidden")
	log.Info().Int("total", 3).Msg("search completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "search completed", entry["message"])
	assert.EqualValues(t, 3, entry["total"])
	assert.Contains(t, entry, "time")
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		ctx       context.Context
		wantToken string
	}{
		{
			name:      "adds query token",
			ctx:       logger.WithQueryToken(context.Background(), "q-1"),
			wantToken: "q-1",
		},
		{
			name: "ignores empty token",
			ctx:  logger.WithQueryToken(context.Background(), ""),
		},
		{
			name: "plain context",
			ctx:  context.Background(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewBufferedTestLogger(&buf)

			l := log.WithContext(tc.ctx)
			l.Info().Msg("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			if tc.wantToken == "" {
				assert.NotContains(t, entry, "query_token")
				return
			}
			assert.Equal(t, tc.wantToken, entry["query_token"])
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	log.Info().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
