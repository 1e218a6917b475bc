package buildsync

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) SyncAll(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "SyncAll", begin) }(time.Now())

	return s.Service.SyncAll(ctx)
}

func (s *metricsService) SyncScope(ctx context.Context, scope api.Scope) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "SyncScope", begin) }(time.Now())

	return s.Service.SyncScope(ctx, scope)
}
