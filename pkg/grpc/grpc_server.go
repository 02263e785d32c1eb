package grpc

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/view"
)

// HealthReporter publishes one gRPC health service per dashboard view, plus
// the overall "" service.
type HealthReporter struct {
	Health           *health.Server
	RateLimiterStore *api.RateLimiterStore
	logger           *zap.Logger
}

func NewHealthReporter(limiter *api.RateLimiterStore) *HealthReporter {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return &HealthReporter{
		Health:           h,
		RateLimiterStore: limiter,
		logger:           common.GetLoggerWith(common.LoggerNameGrpcServer),
	}
}

func (r *HealthReporter) GetLimiter(method string) *rate.Limiter {
	if r.RateLimiterStore == nil {
		return nil
	} else {
		return r.RateLimiterStore.GetLimiter(method)
	}
}

func (r *HealthReporter) CheckMethodLimiter(method string) bool {
	limiter := r.GetLimiter(method)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// SetViewStatus maps a view status to its health: Ready serves, Failed does
// not. Loading keeps the previous health.
func (r *HealthReporter) SetViewStatus(viewName string, status view.Status) {
	switch status {
	case view.StatusReady:
		r.Health.SetServingStatus(viewName, healthpb.HealthCheckResponse_SERVING)
	case view.StatusFailed:
		r.Health.SetServingStatus(viewName, healthpb.HealthCheckResponse_NOT_SERVING)
	default:
		return
	}
	r.logger.Debug("View health updated", zap.String(common.LoggerFieldView, viewName), zap.Stringer("status", status))
}

// Shutdown marks every service NOT_SERVING.
func (r *HealthReporter) Shutdown() {
	r.Health.Shutdown()
}

// Watch reports the health of a view controller from its settled loads. The
// view is NOT_SERVING until its first successful load.
func Watch[T, A any](r *HealthReporter, c *view.Controller[T, A]) {
	r.Health.SetServingStatus(c.Name(), healthpb.HealthCheckResponse_NOT_SERVING)
	c.Subscribe(func(s view.State[T, A]) {
		r.SetViewStatus(c.Name(), s.Status)
	})
}

// NewServer builds a gRPC server exposing the health service behind the
// logging and rate limit interceptors.
func NewServer(r *HealthReporter, limitedMethods []string) *grpc.Server {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		r.CreateLoggingInterceptor(),
		r.CreateRateLimitInterceptor(limitedMethods),
	))
	healthpb.RegisterHealthServer(server, r.Health)
	return server
}
