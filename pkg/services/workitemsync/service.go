package workitemsync

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/database"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
	"github.com/rishumehrotra/engioscope-sub003/pkg/fetch"
	"github.com/rishumehrotra/engioscope-sub003/pkg/pool"
)

// Service syncs work items and their state change history into the database
//
//go:generate mockgen -package=workitemsync -destination ./mock.go -source=service.go
type Service interface {
	SyncAll(ctx context.Context) (err error)
	SyncCollection(ctx context.Context, collection *api.CollectionConfig) (err error)
	SweepDeleted(ctx context.Context) (err error)
}

// NewService returns a new workitemsync.Service
func NewService(config *api.APIConfig, devopsapiClient devopsapi.Client, databaseClient database.Client) Service {
	return &service{
		config:          config,
		devopsapiClient: devopsapiClient,
		databaseClient:  databaseClient,
	}
}

type service struct {
	config          *api.APIConfig
	devopsapiClient devopsapi.Client
	databaseClient  database.Client
}

func (s *service) SyncAll(ctx context.Context) (err error) {
	for _, collection := range s.config.AzureDevops.Collections {
		err = s.SyncCollection(ctx, collection)
		if err != nil {
			return
		}
	}

	return
}

// SyncCollection runs one work item sync pass; work items are keyed at
// collection granularity because the upstream id space is collection-wide
func (s *service) SyncCollection(ctx context.Context, collection *api.CollectionConfig) (err error) {

	passStart := time.Now().UTC()
	watermarkScope := api.Scope{Collection: collection.Name}

	since, err := s.getSince(ctx, watermarkScope)
	if err != nil {
		return
	}

	log.Info().Msgf("Syncing work items for collection %v changed since %v...", collection.Name, since.Format(time.RFC3339))

	ids, err := s.devopsapiClient.QueryWorkItemIDs(ctx, collection.Name, devopsapi.WorkItemQuery{
		WorkItemTypes: collection.WorkItemTypes,
		ChangedSince:  since,
	})
	if err != nil {
		return
	}
	if len(ids) == 0 {
		return s.databaseClient.UpsertSyncWatermark(ctx, watermarkScope, api.EntityKindWorkItem, passStart)
	}

	log.Info().Msgf("Syncing %v changed work items for collection %v...", len(ids), collection.Name)

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.devopsapiClient.GetWorkItemsAndRelations(groupCtx, collection.Name, ids, func(ctx context.Context, workItems []devopsapi.WorkItem) error {
			return s.databaseClient.UpsertWorkItems(ctx, collection.Name, workItems)
		})
	})
	g.Go(func() error {
		return s.syncStateChanges(groupCtx, collection.Name, ids)
	})

	err = g.Wait()
	if err != nil {
		return
	}

	return s.databaseClient.UpsertSyncWatermark(ctx, watermarkScope, api.EntityKindWorkItem, passStart)
}

func (s *service) getSince(ctx context.Context, scope api.Scope) (since time.Time, err error) {
	watermark, err := s.databaseClient.GetSyncWatermark(ctx, scope, api.EntityKindWorkItem)
	if err != nil {
		return
	}
	if watermark != nil {
		return *watermark, nil
	}

	return time.Now().UTC().AddDate(0, 0, -s.config.Sync.DefaultLookbackDays), nil
}

// syncStateChanges fetches each work item's full revision history through a
// worker pool and stores the derived state timeline; a not-found item was
// deleted upstream and is removed from work_items, keeping its history
func (s *service) syncStateChanges(ctx context.Context, collection string, ids []int) (err error) {

	workerPool, err := pool.NewPool(ctx, pool.DefaultConfig(s.config.Sync.ChunkConcurrency, func(ctx context.Context, workItemID int) (int, error) {
		revisions, revisionsErr := s.devopsapiClient.GetWorkItemRevisions(ctx, collection, workItemID)
		if revisionsErr != nil {
			if errors.Is(revisionsErr, devopsapi.ErrNotFound) {
				return workItemID, s.databaseClient.DeleteWorkItems(ctx, collection, []int{workItemID})
			}
			return workItemID, revisionsErr
		}

		stateChanges := DeriveStateChanges(revisions)
		if len(stateChanges) == 0 {
			return workItemID, nil
		}

		return workItemID, s.databaseClient.UpsertWorkItemStateChanges(ctx, collection, workItemID, stateChanges)
	}))
	if err != nil {
		return
	}

	// drain results while sending; with the buffered results channel full the
	// workers stall and SendJobs would block forever on a large id list
	go func() {
		workerPool.SendJobs(ids...)
		workerPool.Close()
	}()

	jobErrors := workerPool.Errors()
	if len(jobErrors) > 0 {
		return errors.Wrapf(jobErrors[0].Err, "failed syncing state changes for work item %v", jobErrors[0].Job)
	}

	return
}

// SweepDeleted removes work items found in the upstream recycle bin; deleted
// items drop out of change-tracking queries, so the sweep always scans the
// full deleted set instead of keeping a watermark
func (s *service) SweepDeleted(ctx context.Context) (err error) {

	for _, group := range fetch.Chunk(s.config.Scopes(), s.config.Sync.SweepGroupSize) {
		g, groupCtx := errgroup.WithContext(ctx)
		for _, scope := range group {
			scope := scope
			g.Go(func() error { return s.sweepScope(groupCtx, scope) })
		}
		err = g.Wait()
		if err != nil {
			return
		}
	}

	return
}

func (s *service) sweepScope(ctx context.Context, scope api.Scope) (err error) {

	deletedWorkItems, err := s.devopsapiClient.GetDeletedWorkItems(ctx, scope)
	if err != nil {
		return
	}
	if len(deletedWorkItems) == 0 {
		return
	}

	ids := make([]int, 0, len(deletedWorkItems))
	for _, deletedWorkItem := range deletedWorkItems {
		ids = append(ids, deletedWorkItem.ID)
	}

	log.Info().Msgf("Removing %v deleted work items for scope %v...", len(ids), scope)

	return s.databaseClient.DeleteWorkItems(ctx, scope.Collection, ids)
}

// DeriveStateChanges folds a revision history into the minimal ordered state
// timeline, collapsing consecutive revisions sharing the same state; an
// oscillation back to an earlier state is a real transition and is kept
func DeriveStateChanges(revisions []devopsapi.WorkItemRevision) (stateChanges []database.StateChange) {
	for _, revision := range revisions {
		state := revision.StringField(devopsapi.FieldState)
		date := revision.TimeField(devopsapi.FieldChangedDate)
		if state == "" || date == nil {
			continue
		}
		if len(stateChanges) > 0 && stateChanges[len(stateChanges)-1].State == state {
			continue
		}
		stateChanges = append(stateChanges, database.StateChange{State: state, Date: *date})
	}

	return
}
