package buildsync

import (
	"context"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "buildsync"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) SyncAll(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "SyncAll", err) }()

	return s.Service.SyncAll(ctx)
}

func (s *loggingService) SyncScope(ctx context.Context, scope api.Scope) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "SyncScope", err) }()

	return s.Service.SyncScope(ctx, scope)
}
