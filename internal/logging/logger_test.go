package logging

import (
	"context"
	"testing"

	"feedbackservice/internal/ctxdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAddsTraceID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := New(zap.New(core))

	ctx := ctxdata.WithTraceID(context.Background(), "trace-1")
	logger.Info(ctx, "hello", zap.Int("n", 1))
	logger.Debug(context.Background(), "no trace")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "trace-1", entries[0].ContextMap()[requestID])
	assert.Equal(t, int64(1), entries[0].ContextMap()["n"])
	_, ok := entries[1].ContextMap()[requestID]
	assert.False(t, ok)
}

func TestLoggerAddsTrigger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := New(zap.New(core))

	ctx := ctxdata.WithTrigger(ctxdata.WithTraceID(context.Background(), "run-7"), "schedule")
	logger.Info(ctx, "digest finished")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "run-7", fields[requestID])
	assert.Equal(t, "schedule", fields[trigger])
}

func TestContextWithLogger(t *testing.T) {
	logger := NewNop()

	_, ok := GetFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithLogger(context.Background(), logger)
	got, ok := GetFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, logger, got)

	fallback := NewNop()
	assert.Same(t, logger, FromContext(ctx, fallback))
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}
