package sonarapi

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) GetMeasures(ctx context.Context, projectKey string) (measures ComponentMeasures, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetMeasures", begin)
	}(time.Now())

	return c.Client.GetMeasures(ctx, projectKey)
}

func (c *metricsClient) GetQualityGateStatus(ctx context.Context, projectKey string) (qualityGate QualityGate, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetQualityGateStatus", begin)
	}(time.Now())

	return c.Client.GetQualityGateStatus(ctx, projectKey)
}

func (c *metricsClient) GetAnalysisHistory(ctx context.Context, projectKey string, since time.Time) (analyses []Analysis, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetAnalysisHistory", begin)
	}(time.Now())

	return c.Client.GetAnalysisHistory(ctx, projectKey, since)
}
