package devopsapi

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

func (c *metricsClient) ListChangedBuilds(ctx context.Context, scope api.Scope, since time.Time, handler func(ctx context.Context, builds []Build) error) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "ListChangedBuilds", begin)
	}(time.Now())

	return c.Client.ListChangedBuilds(ctx, scope, since, handler)
}

func (c *metricsClient) GetBuildTimeline(ctx context.Context, scope api.Scope, buildID int) (timeline *Timeline, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBuildTimeline", begin)
	}(time.Now())

	return c.Client.GetBuildTimeline(ctx, scope, buildID)
}

func (c *metricsClient) GetTestCoverage(ctx context.Context, scope api.Scope, buildID int) (coverage []CoverageData, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetTestCoverage", begin)
	}(time.Now())

	return c.Client.GetTestCoverage(ctx, scope, buildID)
}

func (c *metricsClient) QueryWorkItemIDs(ctx context.Context, collection string, query WorkItemQuery) (ids []int, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "QueryWorkItemIDs", begin)
	}(time.Now())

	return c.Client.QueryWorkItemIDs(ctx, collection, query)
}

func (c *metricsClient) GetWorkItemsAndRelations(ctx context.Context, collection string, ids []int, handler func(ctx context.Context, workItems []WorkItem) error) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetWorkItemsAndRelations", begin)
	}(time.Now())

	return c.Client.GetWorkItemsAndRelations(ctx, collection, ids, handler)
}

func (c *metricsClient) GetWorkItemRevisions(ctx context.Context, collection string, id int) (revisions []WorkItemRevision, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetWorkItemRevisions", begin)
	}(time.Now())

	return c.Client.GetWorkItemRevisions(ctx, collection, id)
}

func (c *metricsClient) GetDeletedWorkItems(ctx context.Context, scope api.Scope) (deletedWorkItems []DeletedWorkItem, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetDeletedWorkItems", begin)
	}(time.Now())

	return c.Client.GetDeletedWorkItems(ctx, scope)
}
