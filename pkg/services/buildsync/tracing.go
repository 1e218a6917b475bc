package buildsync

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "buildsync"}
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

func (s *tracingService) SyncScope(ctx context.Context, scope api.Scope) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "SyncScope"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.SyncScope(ctx, scope)
}
