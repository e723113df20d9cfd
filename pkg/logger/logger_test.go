package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	WithRequestID(ctx, base).Info("report computed")
	WithRequestID(context.Background(), base).Info("no request")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "abc", RequestID(ContextWithRequestID(context.Background(), "abc")))
	assert.Empty(t, RequestID(context.Background()))
	assert.Empty(t, RequestID(nil)) //nolint:staticcheck
}

func TestNewFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "chatty", Encoding: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
