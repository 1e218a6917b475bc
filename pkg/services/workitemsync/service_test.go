package workitemsync

import (
	"context"
	"errors"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/database"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
)

func TestDeriveStateChanges(t *testing.T) {

	t.Run("CollapsesConsecutiveRepeatsKeepingOscillations", func(t *testing.T) {

		base := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
		revisions := []devopsapi.WorkItemRevision{
			getRevision("New", base),
			getRevision("New", base.AddDate(0, 0, 1)),
			getRevision("Active", base.AddDate(0, 0, 2)),
			getRevision("Active", base.AddDate(0, 0, 3)),
			getRevision("Active", base.AddDate(0, 0, 4)),
			getRevision("New", base.AddDate(0, 0, 5)),
			getRevision("Closed", base.AddDate(0, 0, 6)),
		}

		// act
		stateChanges := DeriveStateChanges(revisions)

		assert.Equal(t, []database.StateChange{
			{State: "New", Date: base},
			{State: "Active", Date: base.AddDate(0, 0, 2)},
			{State: "New", Date: base.AddDate(0, 0, 5)},
			{State: "Closed", Date: base.AddDate(0, 0, 6)},
		}, stateChanges)
	})

	t.Run("ReturnsEmptyForEmptyRevisionHistory", func(t *testing.T) {

		// act
		stateChanges := DeriveStateChanges([]devopsapi.WorkItemRevision{})

		assert.Empty(t, stateChanges)
	})

	t.Run("SkipsRevisionsWithoutStateOrChangeDate", func(t *testing.T) {

		base := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
		revisions := []devopsapi.WorkItemRevision{
			{Fields: map[string]interface{}{devopsapi.FieldState: "New"}},
			getRevision("Active", base),
			{Fields: map[string]interface{}{devopsapi.FieldChangedDate: base.AddDate(0, 0, 1).Format(time.RFC3339)}},
			getRevision("Closed", base.AddDate(0, 0, 2)),
		}

		// act
		stateChanges := DeriveStateChanges(revisions)

		assert.Equal(t, []database.StateChange{
			{State: "Active", Date: base},
			{State: "Closed", Date: base.AddDate(0, 0, 2)},
		}, stateChanges)
	})
}

func TestSyncCollection(t *testing.T) {

	t.Run("AdvancesWatermarkWhenNoWorkItemsChanged", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)
		collection := config.AzureDevops.Collections[0]
		watermarkScope := api.Scope{Collection: collection.Name}

		databaseClient.EXPECT().GetSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem).Return(nil, nil).Times(1)
		devopsapiClient.EXPECT().QueryWorkItemIDs(gomock.Any(), collection.Name, gomock.Any()).Return(nil, nil).Times(1)
		databaseClient.EXPECT().UpsertSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem, gomock.Any()).Return(nil).Times(1)

		// act
		err := service.SyncCollection(context.Background(), collection)

		assert.Nil(t, err)
	})

	t.Run("QueriesWithConfiguredWorkItemTypesAndWatermark", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)
		collection := config.AzureDevops.Collections[0]
		watermarkScope := api.Scope{Collection: collection.Name}
		watermark := time.Date(2023, 6, 15, 6, 0, 0, 0, time.UTC)

		databaseClient.EXPECT().GetSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem).Return(&watermark, nil).Times(1)

		var executedQuery devopsapi.WorkItemQuery
		devopsapiClient.
			EXPECT().
			QueryWorkItemIDs(gomock.Any(), collection.Name, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, query devopsapi.WorkItemQuery) ([]int, error) {
				executedQuery = query
				return nil, nil
			}).
			Times(1)
		databaseClient.EXPECT().UpsertSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem, gomock.Any()).Return(nil).Times(1)

		// act
		err := service.SyncCollection(context.Background(), collection)

		assert.Nil(t, err)
		assert.Equal(t, []string{"User Story", "Bug", "Feature"}, executedQuery.WorkItemTypes)
		assert.True(t, executedQuery.ChangedSince.Equal(watermark))
	})

	t.Run("UpsertsWorkItemsAndDerivedStateChanges", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)
		collection := config.AzureDevops.Collections[0]
		watermarkScope := api.Scope{Collection: collection.Name}
		base := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

		databaseClient.EXPECT().GetSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem).Return(nil, nil).Times(1)
		devopsapiClient.EXPECT().QueryWorkItemIDs(gomock.Any(), collection.Name, gomock.Any()).Return([]int{101, 102}, nil).Times(1)

		devopsapiClient.
			EXPECT().
			GetWorkItemsAndRelations(gomock.Any(), collection.Name, []int{101, 102}, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ []int, handler func(context.Context, []devopsapi.WorkItem) error) error {
				return handler(ctx, []devopsapi.WorkItem{{ID: 101}, {ID: 102}})
			}).
			Times(1)
		databaseClient.EXPECT().UpsertWorkItems(gomock.Any(), collection.Name, gomock.Any()).Return(nil).Times(1)

		devopsapiClient.EXPECT().GetWorkItemRevisions(gomock.Any(), collection.Name, 101).Return([]devopsapi.WorkItemRevision{getRevision("New", base)}, nil).Times(1)
		devopsapiClient.EXPECT().GetWorkItemRevisions(gomock.Any(), collection.Name, 102).Return([]devopsapi.WorkItemRevision{getRevision("Active", base)}, nil).Times(1)
		databaseClient.EXPECT().UpsertWorkItemStateChanges(gomock.Any(), collection.Name, 101, []database.StateChange{{State: "New", Date: base}}).Return(nil).Times(1)
		databaseClient.EXPECT().UpsertWorkItemStateChanges(gomock.Any(), collection.Name, 102, []database.StateChange{{State: "Active", Date: base}}).Return(nil).Times(1)

		databaseClient.EXPECT().UpsertSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem, gomock.Any()).Return(nil).Times(1)

		// act
		err := service.SyncCollection(context.Background(), collection)

		assert.Nil(t, err)
	})

	t.Run("DeletesWorkItemWhoseRevisionsAreNotFoundAndContinues", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)
		collection := config.AzureDevops.Collections[0]
		watermarkScope := api.Scope{Collection: collection.Name}
		base := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

		databaseClient.EXPECT().GetSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem).Return(nil, nil).Times(1)
		devopsapiClient.EXPECT().QueryWorkItemIDs(gomock.Any(), collection.Name, gomock.Any()).Return([]int{201, 202}, nil).Times(1)
		devopsapiClient.EXPECT().GetWorkItemsAndRelations(gomock.Any(), collection.Name, gomock.Any(), gomock.Any()).Return(nil).Times(1)

		devopsapiClient.EXPECT().GetWorkItemRevisions(gomock.Any(), collection.Name, 201).Return(nil, devopsapi.ErrNotFound).Times(1)
		devopsapiClient.EXPECT().GetWorkItemRevisions(gomock.Any(), collection.Name, 202).Return([]devopsapi.WorkItemRevision{getRevision("Closed", base)}, nil).Times(1)

		databaseClient.EXPECT().DeleteWorkItems(gomock.Any(), collection.Name, []int{201}).Return(nil).Times(1)
		databaseClient.EXPECT().UpsertWorkItemStateChanges(gomock.Any(), collection.Name, 202, gomock.Any()).Return(nil).Times(1)
		databaseClient.EXPECT().UpsertSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem, gomock.Any()).Return(nil).Times(1)

		// act
		err := service.SyncCollection(context.Background(), collection)

		assert.Nil(t, err)
	})

	t.Run("CompletesWhenChangedIdsOutnumberThePoolQueueCapacity", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		config.Sync.ChunkConcurrency = 1
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)
		collection := config.AzureDevops.Collections[0]
		watermarkScope := api.Scope{Collection: collection.Name}
		base := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

		ids := make([]int, 300)
		for i := range ids {
			ids[i] = 1000 + i
		}

		databaseClient.EXPECT().GetSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem).Return(nil, nil).Times(1)
		devopsapiClient.EXPECT().QueryWorkItemIDs(gomock.Any(), collection.Name, gomock.Any()).Return(ids, nil).Times(1)
		devopsapiClient.EXPECT().GetWorkItemsAndRelations(gomock.Any(), collection.Name, ids, gomock.Any()).Return(nil).Times(1)
		devopsapiClient.EXPECT().GetWorkItemRevisions(gomock.Any(), collection.Name, gomock.Any()).Return([]devopsapi.WorkItemRevision{getRevision("New", base)}, nil).Times(len(ids))
		databaseClient.EXPECT().UpsertWorkItemStateChanges(gomock.Any(), collection.Name, gomock.Any(), gomock.Any()).Return(nil).Times(len(ids))
		databaseClient.EXPECT().UpsertSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem, gomock.Any()).Return(nil).Times(1)

		done := make(chan error, 1)

		// act
		go func() {
			done <- service.SyncCollection(context.Background(), collection)
		}()

		select {
		case err := <-done:
			assert.Nil(t, err)
		case <-time.After(10 * time.Second):
			assert.FailNow(t, "SyncCollection did not finish; sending jobs must not block on a full results queue")
		}
	})

	t.Run("DoesNotAdvanceWatermarkWhenARevisionFetchFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)
		collection := config.AzureDevops.Collections[0]
		watermarkScope := api.Scope{Collection: collection.Name}

		databaseClient.EXPECT().GetSyncWatermark(gomock.Any(), watermarkScope, api.EntityKindWorkItem).Return(nil, nil).Times(1)
		devopsapiClient.EXPECT().QueryWorkItemIDs(gomock.Any(), collection.Name, gomock.Any()).Return([]int{301}, nil).Times(1)
		devopsapiClient.EXPECT().GetWorkItemsAndRelations(gomock.Any(), collection.Name, gomock.Any(), gomock.Any()).Return(nil).Times(1)
		devopsapiClient.EXPECT().GetWorkItemRevisions(gomock.Any(), collection.Name, 301).Return(nil, errors.New("remote api unavailable")).Times(1)

		databaseClient.EXPECT().UpsertSyncWatermark(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		err := service.SyncCollection(context.Background(), collection)

		assert.NotNil(t, err)
	})
}

func TestSweepDeleted(t *testing.T) {

	t.Run("RemovesDeletedWorkItemsPerScope", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)
		scope := api.Scope{Collection: "test-collection", Project: "test-project"}

		devopsapiClient.
			EXPECT().
			GetDeletedWorkItems(gomock.Any(), scope).
			Return([]devopsapi.DeletedWorkItem{{ID: 401}, {ID: 402}}, nil).
			Times(1)
		databaseClient.EXPECT().DeleteWorkItems(gomock.Any(), scope.Collection, []int{401, 402}).Return(nil).Times(1)

		// act
		err := service.SweepDeleted(context.Background())

		assert.Nil(t, err)
	})

	t.Run("DoesNotDeleteWhenUpstreamRecycleBinIsEmpty", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := getConfig()
		devopsapiClient := devopsapi.NewMockClient(ctrl)
		databaseClient := database.NewMockClient(ctrl)
		service := NewService(config, devopsapiClient, databaseClient)

		devopsapiClient.EXPECT().GetDeletedWorkItems(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
		databaseClient.EXPECT().DeleteWorkItems(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		err := service.SweepDeleted(context.Background())

		assert.Nil(t, err)
	})
}

func getConfig() *api.APIConfig {
	config := &api.APIConfig{
		AzureDevops: &api.AzureDevopsConfig{
			URL:         "https://devops.example.com",
			AccessToken: "token",
			Collections: []*api.CollectionConfig{
				{
					Name: "test-collection",
					Projects: []*api.ProjectConfig{
						{Name: "test-project"},
					},
				},
			},
		},
	}
	config.SetDefaults()

	return config
}

func getRevision(state string, changedDate time.Time) devopsapi.WorkItemRevision {
	return devopsapi.WorkItemRevision{
		Fields: map[string]interface{}{
			devopsapi.FieldState:       state,
			devopsapi.FieldChangedDate: changedDate.Format(time.RFC3339),
		},
	}
}
