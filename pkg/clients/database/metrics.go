package database

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
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

func (c *metricsClient) Connect(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Connect", begin) }(time.Now())

	return c.Client.Connect(ctx)
}

func (c *metricsClient) ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "ConnectWithDriverAndSource", begin)
	}(time.Now())

	return c.Client.ConnectWithDriverAndSource(ctx, driverName, dataSourceName)
}

func (c *metricsClient) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "AwaitDatabaseReadiness", begin)
	}(time.Now())

	return c.Client.AwaitDatabaseReadiness(ctx)
}

func (c *metricsClient) InitSchema(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "InitSchema", begin) }(time.Now())

	return c.Client.InitSchema(ctx)
}

func (c *metricsClient) UpsertBuilds(ctx context.Context, scope api.Scope, builds []devopsapi.Build) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "UpsertBuilds", begin) }(time.Now())

	return c.Client.UpsertBuilds(ctx, scope, builds)
}

func (c *metricsClient) GetBuildIDsWithTimeline(ctx context.Context, scope api.Scope, buildIDs []int) (buildIDsWithTimeline []int, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBuildIDsWithTimeline", begin)
	}(time.Now())

	return c.Client.GetBuildIDsWithTimeline(ctx, scope, buildIDs)
}

func (c *metricsClient) UpsertBuildTimelines(ctx context.Context, scope api.Scope, timelines []BuildTimeline) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpsertBuildTimelines", begin)
	}(time.Now())

	return c.Client.UpsertBuildTimelines(ctx, scope, timelines)
}

func (c *metricsClient) UpsertTestCoverage(ctx context.Context, scope api.Scope, coverages []BuildCoverage) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpsertTestCoverage", begin)
	}(time.Now())

	return c.Client.UpsertTestCoverage(ctx, scope, coverages)
}

func (c *metricsClient) UpsertSonarMeasures(ctx context.Context, scope api.Scope, snapshots []MeasureSnapshot) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpsertSonarMeasures", begin)
	}(time.Now())

	return c.Client.UpsertSonarMeasures(ctx, scope, snapshots)
}

func (c *metricsClient) DeleteBuildData(ctx context.Context, scope api.Scope, buildIDs []int) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "DeleteBuildData", begin) }(time.Now())

	return c.Client.DeleteBuildData(ctx, scope, buildIDs)
}

func (c *metricsClient) UpsertWorkItems(ctx context.Context, collection string, workItems []devopsapi.WorkItem) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "UpsertWorkItems", begin) }(time.Now())

	return c.Client.UpsertWorkItems(ctx, collection, workItems)
}

func (c *metricsClient) UpsertWorkItemStateChanges(ctx context.Context, collection string, workItemID int, stateChanges []StateChange) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpsertWorkItemStateChanges", begin)
	}(time.Now())

	return c.Client.UpsertWorkItemStateChanges(ctx, collection, workItemID, stateChanges)
}

func (c *metricsClient) DeleteWorkItems(ctx context.Context, collection string, workItemIDs []int) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "DeleteWorkItems", begin) }(time.Now())

	return c.Client.DeleteWorkItems(ctx, collection, workItemIDs)
}

func (c *metricsClient) GetSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind) (watermark *time.Time, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetSyncWatermark", begin) }(time.Now())

	return c.Client.GetSyncWatermark(ctx, scope, kind)
}

func (c *metricsClient) UpsertSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind, watermark time.Time) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpsertSyncWatermark", begin)
	}(time.Now())

	return c.Client.UpsertSyncWatermark(ctx, scope, kind, watermark)
}
