package workitemsync

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "workitemsync"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) SyncAll(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "SyncAll"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.SyncAll(ctx)
}

func (s *tracingService) SyncCollection(ctx context.Context, collection *api.CollectionConfig) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "SyncCollection"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.SyncCollection(ctx, collection)
}

func (s *tracingService) SweepDeleted(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "SweepDeleted"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.SweepDeleted(ctx)
}
