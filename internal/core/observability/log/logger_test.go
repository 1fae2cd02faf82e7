package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFieldsAndLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core, LevelInfo)

	l.Debug("hidden")
	l.Info("bound", String("axis", "move"), Int("count", 2), Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bound", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "move", ctx["axis"])
	assert.EqualValues(t, 2, ctx["count"])
	assert.Equal(t, "boom", ctx["error"])

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.With(Bool("child", true)).Debug("visible")
	assert.Equal(t, 2, logs.Len())
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Error("dropped")
	assert.Equal(t, LevelError, l.GetLevel())
}
