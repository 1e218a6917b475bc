package database

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "database"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) Connect(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Connect"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Connect(ctx)
}

func (c *tracingClient) ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ConnectWithDriverAndSource"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ConnectWithDriverAndSource(ctx, driverName, dataSourceName)
}

func (c *tracingClient) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "AwaitDatabaseReadiness"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.AwaitDatabaseReadiness(ctx)
}

func (c *tracingClient) InitSchema(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "InitSchema"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.InitSchema(ctx)
}

func (c *tracingClient) UpsertBuilds(ctx context.Context, scope api.Scope, builds []devopsapi.Build) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpsertBuilds"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpsertBuilds(ctx, scope, builds)
}

func (c *tracingClient) GetBuildIDsWithTimeline(ctx context.Context, scope api.Scope, buildIDs []int) (buildIDsWithTimeline []int, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBuildIDsWithTimeline"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetBuildIDsWithTimeline(ctx, scope, buildIDs)
}

func (c *tracingClient) UpsertBuildTimelines(ctx context.Context, scope api.Scope, timelines []BuildTimeline) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpsertBuildTimelines"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpsertBuildTimelines(ctx, scope, timelines)
}

func (c *tracingClient) UpsertTestCoverage(ctx context.Context, scope api.Scope, coverages []BuildCoverage) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpsertTestCoverage"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpsertTestCoverage(ctx, scope, coverages)
}

func (c *tracingClient) UpsertSonarMeasures(ctx context.Context, scope api.Scope, snapshots []MeasureSnapshot) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpsertSonarMeasures"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpsertSonarMeasures(ctx, scope, snapshots)
}

func (c *tracingClient) DeleteBuildData(ctx context.Context, scope api.Scope, buildIDs []int) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "DeleteBuildData"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.DeleteBuildData(ctx, scope, buildIDs)
}

func (c *tracingClient) UpsertWorkItems(ctx context.Context, collection string, workItems []devopsapi.WorkItem) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpsertWorkItems"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpsertWorkItems(ctx, collection, workItems)
}

func (c *tracingClient) UpsertWorkItemStateChanges(ctx context.Context, collection string, workItemID int, stateChanges []StateChange) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpsertWorkItemStateChanges"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpsertWorkItemStateChanges(ctx, collection, workItemID, stateChanges)
}

func (c *tracingClient) DeleteWorkItems(ctx context.Context, collection string, workItemIDs []int) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "DeleteWorkItems"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.DeleteWorkItems(ctx, collection, workItemIDs)
}

func (c *tracingClient) GetSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind) (watermark *time.Time, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetSyncWatermark"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetSyncWatermark(ctx, scope, kind)
}

func (c *tracingClient) UpsertSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind, watermark time.Time) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpsertSyncWatermark"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpsertSyncWatermark(ctx, scope, kind, watermark)
}
