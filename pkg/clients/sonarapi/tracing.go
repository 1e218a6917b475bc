package sonarapi

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "sonarapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetMeasures(ctx context.Context, projectKey string) (measures ComponentMeasures, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetMeasures"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetMeasures(ctx, projectKey)
}

func (c *tracingClient) GetQualityGateStatus(ctx context.Context, projectKey string) (qualityGate QualityGate, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetQualityGateStatus"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetQualityGateStatus(ctx, projectKey)
}

func (c *tracingClient) GetAnalysisHistory(ctx context.Context, projectKey string, since time.Time) (analyses []Analysis, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetAnalysisHistory"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetAnalysisHistory(ctx, projectKey, since)
}
