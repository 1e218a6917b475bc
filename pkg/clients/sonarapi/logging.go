package sonarapi

import (
	"context"
	"time"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "sonarapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetMeasures(ctx context.Context, projectKey string) (measures ComponentMeasures, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetMeasures", err) }()

	return c.Client.GetMeasures(ctx, projectKey)
}

func (c *loggingClient) GetQualityGateStatus(ctx context.Context, projectKey string) (qualityGate QualityGate, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetQualityGateStatus", err) }()

	return c.Client.GetQualityGateStatus(ctx, projectKey)
}

func (c *loggingClient) GetAnalysisHistory(ctx context.Context, projectKey string, since time.Time) (analyses []Analysis, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetAnalysisHistory", err) }()

	return c.Client.GetAnalysisHistory(ctx, projectKey, since)
}
