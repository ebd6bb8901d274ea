package contextx_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"premium_api/pkg/contextx"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	ctx = contextx.WithTraceID(ctx, "cs0s8b0p6k7ag0f0ut1g")

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal("cs0s8b0p6k7ag0f0ut1g", traceID.String())
}

func TestLogger(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logger, err := contextx.LoggerFromContext(ctx)
	rq.Nil(logger)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "logger: no value in context")
	rq.Same(slog.Default(), contextx.LoggerFromContextOrDefault(ctx))

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = contextx.WithLogger(ctx, testLogger)

	logger, err = contextx.LoggerFromContext(ctx)
	rq.NoError(err)
	rq.Same(testLogger, logger)
	rq.Same(testLogger, contextx.LoggerFromContextOrDefault(ctx))
}
