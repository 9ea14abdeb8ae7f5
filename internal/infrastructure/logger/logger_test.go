package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates a logger with json format", func(t *testing.T) {
		cfg := ProductionConfig()
		logger, err := New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("creates a logger with console format", func(t *testing.T) {
		cfg := DefaultConfig()
		logger, err := New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})
}

func TestNewFromSettings(t *testing.T) {
	t.Run("blank settings fall back to defaults", func(t *testing.T) {
		logger, err := NewFromSettings("", "", "")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("explicit level wins", func(t *testing.T) {
		logger, err := NewFromSettings("debug", "json", "stderr")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, parseLevel(input), "level %q", input)
	}
}
