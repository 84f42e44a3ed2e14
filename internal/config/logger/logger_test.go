package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"flip/internal/app/errors"
	"flip/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{name: "Default", level: config.DefaultLogLevel, format: ConsoleFormat, expected: zerolog.InfoLevel},
		{name: "Debug level", level: DebugLevel, format: ConsoleFormat, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", level: WarnLevel, format: JSONFormat, expected: zerolog.WarnLevel},
		{name: "Empty level and format (defaults)", expected: zerolog.InfoLevel},
		{name: "Error level", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Fatal level", level: FatalLevel, expected: zerolog.FatalLevel},
		{name: "Panic level", level: PanicLevel, expected: zerolog.PanicLevel},
		{name: "Trace level", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Unknown level (defaults to info)", level: "loud", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLoggerWithOutput(cfg, io.Discard)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_Logger_JSONOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	var buf bytes.Buffer
	log := NewLoggerWithOutput(cfg, &buf).WithComponent("SWITCH")
	log.Info().Str("side", "right").Msg("value changed")

	var entry map[string]interface{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "SWITCH", entry["component"])
	assert.Equal(t, "right", entry["side"])
	assert.Equal(t, "value changed", entry["message"])
	assert.Equal(t, config.Version, entry["version"])
}

func Test_Logger_ConsoleOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = DebugLevel

	var buf bytes.Buffer
	log := NewLoggerWithOutput(cfg, &buf).WithComponent("UI")
	log.Debug().Msg("layout")
	log.Warn().Msg("slow frame")

	out := buf.String()
	assert.Contains(t, out, "[UI]")
	assert.Contains(t, out, "layout")
	assert.Contains(t, out, "slow frame")
	assert.NotContains(t, out, "component=")
}

func Test_Logger_LevelFiltering(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = ErrorLevel
	cfg.Logging.Format = JSONFormat

	var buf bytes.Buffer
	log := NewLoggerWithOutput(cfg, &buf)
	log.Info().Msg("hidden")
	log.Error().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func Test_OpenOutput(t *testing.T) {
	t.Run("No file discards", func(t *testing.T) {
		out, closeFn, err := OpenOutput(config.DefaultConfig())

		assert.NoError(t, err)
		assert.Equal(t, io.Discard, out)
		assert.NoError(t, closeFn())
	})

	t.Run("File is appended to", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = filepath.Join(t.TempDir(), "flip.log")

		out, closeFn, err := OpenOutput(cfg)
		assert.NoError(t, err)

		NewLoggerWithOutput(cfg, out).Info().Msg("to file")
		assert.NoError(t, closeFn())

		data, err := os.ReadFile(cfg.Logging.File)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})

	t.Run("Unwritable path", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = filepath.Join(t.TempDir(), "missing", "flip.log")

		_, _, err := OpenOutput(cfg)
		assert.ErrorIs(t, err, errors.ErrFailedToOpenLog)
	})
}

func Test_NoopEvent(t *testing.T) {
	event := NoopEvent()

	assert.False(t, event.Enabled())
	assert.NotPanics(t, func() {
		event.Str("side", "left").Err(errors.ErrInvalidConfig).Msg("dropped")
	})
}
