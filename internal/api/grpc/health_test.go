package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealthChecker_Check(t *testing.T) {
	var pingErr error
	hc := NewHealthChecker(func(context.Context) error { return pingErr }, 0)
	ctx := context.Background()

	t.Run("Serving", func(t *testing.T) {
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.Check(ctx))

		resp, err := hc.Server().Check(ctx, &healthpb.HealthCheckRequest{Service: financingServiceName})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		pingErr = errors.New("connection refused")
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, hc.Check(ctx))

		resp, err := hc.Server().Check(ctx, &healthpb.HealthCheckRequest{})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
	})
}

func TestHealthChecker_RunStopsOnCancel(t *testing.T) {
	hc := NewHealthChecker(func(context.Context) error { return nil }, 0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hc.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	resp, err := hc.Server().Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}
