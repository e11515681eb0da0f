package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*LoggerAdapter, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestLoggerAdapter_Levels(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	log.Debug("debug msg", "k", 1)
	log.Info("info msg")
	log.Warn("warn msg")
	log.Error("error msg")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug msg", entries[0].Message)
	assert.Equal(t, int64(1), entries[0].ContextMap()["k"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLoggerAdapter_LevelFilter(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	log.Debug("hidden")
	log.Info("shown")

	assert.Equal(t, 1, logs.Len())
}

func TestLoggerAdapter_WithFields(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	log.WithField("tool", "get_current_weather").
		WithFields(map[string]any{"call_id": "call_1"}).
		Info("executing")

	ctx := logs.AllUntimed()[0].ContextMap()
	assert.Equal(t, "get_current_weather", ctx["tool"])
	assert.Equal(t, "call_1", ctx["call_id"])
}

func TestNewLoggerAdapter_InvalidLevel(t *testing.T) {
	_, err := NewLoggerAdapter("loud")
	assert.Error(t, err)
}

func TestNewLoggerAdapter_Valid(t *testing.T) {
	log, err := NewLoggerAdapter("debug")
	require.NoError(t, err)
	assert.NoError(t, log.Close())
}
