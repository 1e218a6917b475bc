package buildsync

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/database"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/sonarapi"
	"github.com/rishumehrotra/engioscope-sub003/pkg/fetch"
)

// Service syncs builds and their dependent data into the database
//
//go:generate mockgen -package=buildsync -destination ./mock.go -source=service.go
type Service interface {
	SyncAll(ctx context.Context) (err error)
	SyncScope(ctx context.Context, scope api.Scope) (err error)
}

// NewService returns a new buildsync.Service
func NewService(config *api.APIConfig, devopsapiClient devopsapi.Client, sonarapiClient sonarapi.Client, databaseClient database.Client) Service {
	return &service{
		config:          config,
		devopsapiClient: devopsapiClient,
		sonarapiClient:  sonarapiClient,
		databaseClient:  databaseClient,
	}
}

type service struct {
	config          *api.APIConfig
	devopsapiClient devopsapi.Client
	sonarapiClient  sonarapi.Client
	databaseClient  database.Client
}

func (s *service) SyncAll(ctx context.Context) (err error) {
	for _, scope := range s.config.Scopes() {
		err = s.SyncScope(ctx, scope)
		if err != nil {
			return
		}
	}

	return
}

// SyncScope runs one build sync pass for a single scope; the watermark is
// advanced to the pass start instant only after every chunk's writes completed
func (s *service) SyncScope(ctx context.Context, scope api.Scope) (err error) {

	passStart := time.Now().UTC()

	since, err := s.getSince(ctx, scope)
	if err != nil {
		return
	}

	log.Info().Msgf("Syncing builds for scope %v changed since %v...", scope, since.Format(time.RFC3339))

	err = s.devopsapiClient.ListChangedBuilds(ctx, scope, since, func(ctx context.Context, builds []devopsapi.Build) error {
		return s.syncBuildChunk(ctx, scope, builds)
	})
	if err != nil {
		return
	}

	return s.databaseClient.UpsertSyncWatermark(ctx, scope, api.EntityKindBuild, passStart)
}

func (s *service) getSince(ctx context.Context, scope api.Scope) (since time.Time, err error) {
	watermark, err := s.databaseClient.GetSyncWatermark(ctx, scope, api.EntityKindBuild)
	if err != nil {
		return
	}
	if watermark != nil {
		return *watermark, nil
	}

	return time.Now().UTC().AddDate(0, 0, -s.config.Sync.DefaultLookbackDays), nil
}

func (s *service) syncBuildChunk(ctx context.Context, scope api.Scope, builds []devopsapi.Build) (err error) {

	toSave := make([]devopsapi.Build, 0, len(builds))
	toDelete := make([]int, 0)
	for _, build := range builds {
		if build.Deleted {
			toDelete = append(toDelete, build.ID)
			continue
		}
		toSave = append(toSave, build)
	}

	if len(toDelete) > 0 {
		log.Info().Msgf("Removing %v deleted builds for scope %v...", len(toDelete), scope)
		err = s.databaseClient.DeleteBuildData(ctx, scope, toDelete)
		if err != nil {
			return
		}
	}

	if len(toSave) == 0 {
		return
	}

	buildIDs := make([]int, 0, len(toSave))
	for _, build := range toSave {
		buildIDs = append(buildIDs, build.ID)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.databaseClient.UpsertBuilds(ctx, scope, toSave) })
	g.Go(func() error { return s.syncTimelines(ctx, scope, buildIDs) })
	g.Go(func() error { return s.syncTestCoverage(ctx, scope, buildIDs) })
	g.Go(func() error { return s.syncQualityMeasures(ctx, scope, toSave) })

	return g.Wait()
}

// syncTimelines fetches timelines only for builds without a stored one;
// finished timelines never change, so re-fetching stored ones is skipped
func (s *service) syncTimelines(ctx context.Context, scope api.Scope, buildIDs []int) (err error) {

	buildIDsWithTimeline, err := s.databaseClient.GetBuildIDsWithTimeline(ctx, scope, buildIDs)
	if err != nil {
		return
	}

	hasTimeline := make(map[int]bool, len(buildIDsWithTimeline))
	for _, buildID := range buildIDsWithTimeline {
		hasTimeline[buildID] = true
	}

	missingBuildIDs := make([]int, 0, len(buildIDs))
	for _, buildID := range buildIDs {
		if !hasTimeline[buildID] {
			missingBuildIDs = append(missingBuildIDs, buildID)
		}
	}

	return fetch.ForEachChunk(ctx, missingBuildIDs, s.config.Sync.ChunkSize, int64(s.config.Sync.ChunkConcurrency), func(ctx context.Context, chunk []int) error {
		timelines := make([]database.BuildTimeline, 0, len(chunk))
		for _, buildID := range chunk {
			timeline, timelineErr := s.devopsapiClient.GetBuildTimeline(ctx, scope, buildID)
			if timelineErr != nil {
				return timelineErr
			}
			if timeline == nil {
				continue
			}
			timelines = append(timelines, database.BuildTimeline{BuildID: buildID, Timeline: *timeline})
		}

		return s.databaseClient.UpsertBuildTimelines(ctx, scope, timelines)
	})
}

func (s *service) syncTestCoverage(ctx context.Context, scope api.Scope, buildIDs []int) (err error) {

	return fetch.ForEachChunk(ctx, buildIDs, s.config.Sync.ChunkSize, int64(s.config.Sync.ChunkConcurrency), func(ctx context.Context, chunk []int) error {
		coverages := make([]database.BuildCoverage, 0, len(chunk))
		for _, buildID := range chunk {
			coverage, coverageErr := s.devopsapiClient.GetTestCoverage(ctx, scope, buildID)
			if coverageErr != nil {
				return coverageErr
			}
			if len(coverage) == 0 {
				continue
			}
			coverages = append(coverages, database.BuildCoverage{BuildID: buildID, Coverage: coverage})
		}

		return s.databaseClient.UpsertTestCoverage(ctx, scope, coverages)
	})
}

// syncQualityMeasures stores a measure snapshot per analysis date for the
// distinct repositories touched by a chunk, for repositories mapped to a
// quality project key in configuration
func (s *service) syncQualityMeasures(ctx context.Context, scope api.Scope, builds []devopsapi.Build) (err error) {

	if s.config.SonarQube == nil || s.sonarapiClient == nil {
		return
	}

	projectConfig := s.config.Project(scope)
	if projectConfig == nil || len(projectConfig.SonarProjectKeys) == 0 {
		return
	}

	sonarProjectKeys := make([]string, 0)
	seenKeys := make(map[string]bool)
	for _, build := range builds {
		sonarProjectKey, ok := projectConfig.SonarProjectKeys[build.Repository.ID]
		if !ok || seenKeys[sonarProjectKey] {
			continue
		}
		seenKeys[sonarProjectKey] = true
		sonarProjectKeys = append(sonarProjectKeys, sonarProjectKey)
	}

	for _, sonarProjectKey := range sonarProjectKeys {
		err = s.syncSonarProject(ctx, scope, sonarProjectKey)
		if err != nil {
			return
		}
	}

	return
}

func (s *service) syncSonarProject(ctx context.Context, scope api.Scope, sonarProjectKey string) (err error) {

	since := time.Now().UTC().AddDate(0, 0, -s.config.Sync.DefaultLookbackDays)

	analyses, err := s.sonarapiClient.GetAnalysisHistory(ctx, sonarProjectKey, since)
	if err != nil {
		return
	}
	if len(analyses) == 0 {
		return
	}

	measures, err := s.sonarapiClient.GetMeasures(ctx, sonarProjectKey)
	if err != nil {
		return
	}

	qualityGate, err := s.sonarapiClient.GetQualityGateStatus(ctx, sonarProjectKey)
	if err != nil {
		return
	}

	snapshots := make([]database.MeasureSnapshot, 0, len(analyses))
	for _, analysis := range analyses {
		snapshots = append(snapshots, database.MeasureSnapshot{
			SonarProjectKey: sonarProjectKey,
			MeasuredAt:      analysis.Date,
			Measures:        measures.Measures,
			QualityGate:     qualityGate.Status,
		})
	}

	return s.databaseClient.UpsertSonarMeasures(ctx, scope, snapshots)
}
