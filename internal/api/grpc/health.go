package grpc

import (
	"context"
	"time"

	"star-gestao-backend/internal/logger"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthChecker keeps the standard gRPC health service in sync with the database
type HealthChecker struct {
	server   *health.Server
	ping     func(context.Context) error
	interval time.Duration
}

func NewHealthChecker(ping func(context.Context) error, interval time.Duration) *HealthChecker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthChecker{server: health.NewServer(), ping: ping, interval: interval}
}

func (h *HealthChecker) Server() healthpb.HealthServer {
	return h.server
}

// Check pings the database once and publishes the result for all services
func (h *HealthChecker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := h.ping(ctx); err != nil {
		logger.Warn("Health check failed", "error", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", st)
	h.server.SetServingStatus(financingServiceName, st)
	return st
}

// Run checks periodically until ctx is cancelled, then marks everything as not serving
func (h *HealthChecker) Run(ctx context.Context) {
	h.Check(ctx)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
