package devopsapi

import (
	"context"
	"time"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "devopsapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) ListChangedBuilds(ctx context.Context, scope api.Scope, since time.Time, handler func(ctx context.Context, builds []Build) error) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ListChangedBuilds", err) }()

	return c.Client.ListChangedBuilds(ctx, scope, since, handler)
}

func (c *loggingClient) GetBuildTimeline(ctx context.Context, scope api.Scope, buildID int) (timeline *Timeline, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBuildTimeline", err) }()

	return c.Client.GetBuildTimeline(ctx, scope, buildID)
}

func (c *loggingClient) GetTestCoverage(ctx context.Context, scope api.Scope, buildID int) (coverage []CoverageData, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetTestCoverage", err) }()

	return c.Client.GetTestCoverage(ctx, scope, buildID)
}

func (c *loggingClient) QueryWorkItemIDs(ctx context.Context, collection string, query WorkItemQuery) (ids []int, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "QueryWorkItemIDs", err) }()

	return c.Client.QueryWorkItemIDs(ctx, collection, query)
}

func (c *loggingClient) GetWorkItemsAndRelations(ctx context.Context, collection string, ids []int, handler func(ctx context.Context, workItems []WorkItem) error) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetWorkItemsAndRelations", err) }()

	return c.Client.GetWorkItemsAndRelations(ctx, collection, ids, handler)
}

func (c *loggingClient) GetWorkItemRevisions(ctx context.Context, collection string, id int) (revisions []WorkItemRevision, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetWorkItemRevisions", err, ErrNotFound) }()

	return c.Client.GetWorkItemRevisions(ctx, collection, id)
}

func (c *loggingClient) GetDeletedWorkItems(ctx context.Context, scope api.Scope) (deletedWorkItems []DeletedWorkItem, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetDeletedWorkItems", err) }()

	return c.Client.GetDeletedWorkItems(ctx, scope)
}
