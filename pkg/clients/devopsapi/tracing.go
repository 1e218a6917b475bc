package devopsapi

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "devopsapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) ListChangedBuilds(ctx context.Context, scope api.Scope, since time.Time, handler func(ctx context.Context, builds []Build) error) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ListChangedBuilds"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ListChangedBuilds(ctx, scope, since, handler)
}

func (c *tracingClient) GetBuildTimeline(ctx context.Context, scope api.Scope, buildID int) (timeline *Timeline, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBuildTimeline"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetBuildTimeline(ctx, scope, buildID)
}

func (c *tracingClient) GetTestCoverage(ctx context.Context, scope api.Scope, buildID int) (coverage []CoverageData, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetTestCoverage"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetTestCoverage(ctx, scope, buildID)
}

func (c *tracingClient) QueryWorkItemIDs(ctx context.Context, collection string, query WorkItemQuery) (ids []int, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "QueryWorkItemIDs"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.QueryWorkItemIDs(ctx, collection, query)
}

func (c *tracingClient) GetWorkItemsAndRelations(ctx context.Context, collection string, ids []int, handler func(ctx context.Context, workItems []WorkItem) error) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetWorkItemsAndRelations"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetWorkItemsAndRelations(ctx, collection, ids, handler)
}

func (c *tracingClient) GetWorkItemRevisions(ctx context.Context, collection string, id int) (revisions []WorkItemRevision, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetWorkItemRevisions"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetWorkItemRevisions(ctx, collection, id)
}

func (c *tracingClient) GetDeletedWorkItems(ctx context.Context, scope api.Scope) (deletedWorkItems []DeletedWorkItem, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetDeletedWorkItems"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetDeletedWorkItems(ctx, scope)
}
