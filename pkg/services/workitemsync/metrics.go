package workitemsync

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

func (s *metricsService) SyncCollection(ctx context.Context, collection *api.CollectionConfig) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "SyncCollection", begin) }(time.Now())

	return s.Service.SyncCollection(ctx, collection)
}

func (s *metricsService) SweepDeleted(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "SweepDeleted", begin) }(time.Now())

	return s.Service.SweepDeleted(ctx)
}
