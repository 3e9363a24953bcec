package logger_test

import (
	"context"
	"testing"

	"swaggerhunter/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := zap.New(core)

	ctx := logger.WithLogger(context.Background(), l)
	logger.Info(ctx, "probing", zap.String("domain", "example.com"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "probing", entry.Message)
	require.Equal(t, "example.com", entry.ContextMap()["domain"])
}

func TestWithFieldsAccumulates(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("runId", "r-1"))
	ctx = logger.WithFields(ctx, zap.String("domain", "example.com"))
	logger.Warn(ctx, "slow response")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "r-1", fields["runId"])
	require.Equal(t, "example.com", fields["domain"])
}

func TestGetFallsBackToDefault(t *testing.T) {
	// a bare context must never yield a nil logger
	require.NotNil(t, logger.Get(context.Background()))
}
