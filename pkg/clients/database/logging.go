package database

import (
	"context"
	"time"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "database"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) Connect(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Connect", err) }()

	return c.Client.Connect(ctx)
}

func (c *loggingClient) ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ConnectWithDriverAndSource", err) }()

	return c.Client.ConnectWithDriverAndSource(ctx, driverName, dataSourceName)
}

func (c *loggingClient) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "AwaitDatabaseReadiness", err) }()

	return c.Client.AwaitDatabaseReadiness(ctx)
}

func (c *loggingClient) InitSchema(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "InitSchema", err) }()

	return c.Client.InitSchema(ctx)
}

func (c *loggingClient) UpsertBuilds(ctx context.Context, scope api.Scope, builds []devopsapi.Build) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpsertBuilds", err) }()

	return c.Client.UpsertBuilds(ctx, scope, builds)
}

func (c *loggingClient) GetBuildIDsWithTimeline(ctx context.Context, scope api.Scope, buildIDs []int) (buildIDsWithTimeline []int, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBuildIDsWithTimeline", err) }()

	return c.Client.GetBuildIDsWithTimeline(ctx, scope, buildIDs)
}

func (c *loggingClient) UpsertBuildTimelines(ctx context.Context, scope api.Scope, timelines []BuildTimeline) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpsertBuildTimelines", err) }()

	return c.Client.UpsertBuildTimelines(ctx, scope, timelines)
}

func (c *loggingClient) UpsertTestCoverage(ctx context.Context, scope api.Scope, coverages []BuildCoverage) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpsertTestCoverage", err) }()

	return c.Client.UpsertTestCoverage(ctx, scope, coverages)
}

func (c *loggingClient) UpsertSonarMeasures(ctx context.Context, scope api.Scope, snapshots []MeasureSnapshot) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpsertSonarMeasures", err) }()

	return c.Client.UpsertSonarMeasures(ctx, scope, snapshots)
}

func (c *loggingClient) DeleteBuildData(ctx context.Context, scope api.Scope, buildIDs []int) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "DeleteBuildData", err) }()

	return c.Client.DeleteBuildData(ctx, scope, buildIDs)
}

func (c *loggingClient) UpsertWorkItems(ctx context.Context, collection string, workItems []devopsapi.WorkItem) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpsertWorkItems", err) }()

	return c.Client.UpsertWorkItems(ctx, collection, workItems)
}

func (c *loggingClient) UpsertWorkItemStateChanges(ctx context.Context, collection string, workItemID int, stateChanges []StateChange) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpsertWorkItemStateChanges", err) }()

	return c.Client.UpsertWorkItemStateChanges(ctx, collection, workItemID, stateChanges)
}

func (c *loggingClient) DeleteWorkItems(ctx context.Context, collection string, workItemIDs []int) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "DeleteWorkItems", err) }()

	return c.Client.DeleteWorkItems(ctx, collection, workItemIDs)
}

func (c *loggingClient) GetSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind) (watermark *time.Time, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetSyncWatermark", err) }()

	return c.Client.GetSyncWatermark(ctx, scope, kind)
}

func (c *loggingClient) UpsertSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind, watermark time.Time) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpsertSyncWatermark", err) }()

	return c.Client.UpsertSyncWatermark(ctx, scope, kind, watermark)
}
