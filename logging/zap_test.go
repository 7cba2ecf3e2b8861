package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	l.Debug("debug message", "k", "v")
	l.Info("info message", "count", 2)
	l.Warn("warn message")
	l.Error("error message", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.EqualValues(t, 2, entries[1].ContextMap()["count"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestNewZapLogger_Nil(t *testing.T) {
	l := NewZapLogger(nil)
	assert.NotPanics(t, func() {
		l.Info("discarded")
	})
}

func TestNew(t *testing.T) {
	l, err := New("info", false)
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = New("loud", false)
	assert.Error(t, err)
}
