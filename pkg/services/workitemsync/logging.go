package workitemsync

import (
	"context"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "workitemsync"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) SyncAll(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "SyncAll", err) }()

	return s.Service.SyncAll(ctx)
}

func (s *loggingService) SyncCollection(ctx context.Context, collection *api.CollectionConfig) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "SyncCollection", err) }()

	return s.Service.SyncCollection(ctx, collection)
}

func (s *loggingService) SweepDeleted(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "SweepDeleted", err) }()

	return s.Service.SweepDeleted(ctx)
}
