package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
)

// Client is the interface for reading and writing synced entities in the database
//
//go:generate mockgen -package=database -destination ./mock.go -source=client.go
type Client interface {
	Connect(ctx context.Context) (err error)
	ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error)
	AwaitDatabaseReadiness(ctx context.Context) (err error)
	InitSchema(ctx context.Context) (err error)

	UpsertBuilds(ctx context.Context, scope api.Scope, builds []devopsapi.Build) (err error)
	GetBuildIDsWithTimeline(ctx context.Context, scope api.Scope, buildIDs []int) (buildIDsWithTimeline []int, err error)
	UpsertBuildTimelines(ctx context.Context, scope api.Scope, timelines []BuildTimeline) (err error)
	UpsertTestCoverage(ctx context.Context, scope api.Scope, coverages []BuildCoverage) (err error)
	UpsertSonarMeasures(ctx context.Context, scope api.Scope, snapshots []MeasureSnapshot) (err error)
	DeleteBuildData(ctx context.Context, scope api.Scope, buildIDs []int) (err error)

	UpsertWorkItems(ctx context.Context, collection string, workItems []devopsapi.WorkItem) (err error)
	UpsertWorkItemStateChanges(ctx context.Context, collection string, workItemID int, stateChanges []StateChange) (err error)
	DeleteWorkItems(ctx context.Context, collection string, workItemIDs []int) (err error)

	GetSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind) (watermark *time.Time, err error)
	UpsertSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind, watermark time.Time) (err error)
}

// NewClient returns a new database.Client
func NewClient(config *api.APIConfig) Client {
	return &client{
		databaseDriver: "postgres",
		config:         config,
	}
}

type client struct {
	databaseDriver     string
	config             *api.APIConfig
	databaseConnection *sql.DB
}

// Connect sets up a connection with the database
func (c *client) Connect(ctx context.Context) (err error) {

	log.Debug().Msgf("Connecting to database %v on host %v...", c.config.Database.DatabaseName, c.config.Database.Host)

	userAndPassword := c.config.Database.User
	if c.config.Database.Password != "" {
		userAndPassword += ":" + c.config.Database.Password
	}

	dataSourceName := ""
	if c.config.Database.Insecure {
		dataSourceName = fmt.Sprintf("postgresql://%v@%v:%v/%v?sslmode=disable", userAndPassword, c.config.Database.Host, c.config.Database.Port, c.config.Database.DatabaseName)
	} else {
		dataSourceName = fmt.Sprintf("postgresql://%v@%v:%v/%v?sslmode=%v&sslrootcert=%v&sslcert=%v&sslkey=%v", userAndPassword, c.config.Database.Host, c.config.Database.Port, c.config.Database.DatabaseName, c.config.Database.SslMode, c.config.Database.CertificateAuthorityPath, c.config.Database.CertificatePath, c.config.Database.CertificateKeyPath)
	}

	return c.ConnectWithDriverAndSource(ctx, c.databaseDriver, dataSourceName)
}

// ConnectWithDriverAndSource set up a connection with any database
func (c *client) ConnectWithDriverAndSource(_ context.Context, driverName, dataSourceName string) (err error) {

	log.Debug().Msgf("Opening database connection with driver %v...", driverName)
	c.databaseConnection, err = sql.Open(driverName, dataSourceName)
	if err != nil {
		return
	}

	if c.config.Database.MaxOpenConns > 0 {
		c.databaseConnection.SetMaxOpenConns(c.config.Database.MaxOpenConns)
	}

	if c.config.Database.MaxIdleConns > 0 {
		c.databaseConnection.SetMaxIdleConns(c.config.Database.MaxIdleConns)
	}

	if c.config.Database.ConnMaxLifetimeMinutes > 0 {
		c.databaseConnection.SetConnMaxLifetime(time.Duration(c.config.Database.ConnMaxLifetimeMinutes) * time.Minute)
	}

	return
}

func (c *client) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	return foundation.Retry(func() error {
		log.Debug().Msg("Checking if database is ready...")
		return c.databaseConnection.PingContext(ctx)
	}, foundation.Attempts(12), foundation.DelayMillisecond(5000), foundation.Fixed())
}

// InitSchema creates the tables this application writes to if they don't exist yet
func (c *client) InitSchema(ctx context.Context) (err error) {

	log.Debug().Msg("Ensuring database schema is in place...")

	_, err = c.databaseConnection.ExecContext(ctx,
		`
		CREATE TABLE IF NOT EXISTS builds (
			collection_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			repository_id TEXT NOT NULL,
			build_id INT NOT NULL,
			definition_id INT,
			definition_name TEXT,
			status TEXT,
			result TEXT,
			source_branch TEXT,
			start_time TIMESTAMPTZ,
			finish_time TIMESTAMPTZ,
			payload JSONB,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, project_id, repository_id, build_id)
		);

		CREATE TABLE IF NOT EXISTS build_timelines (
			collection_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			build_id INT NOT NULL,
			timeline_id TEXT,
			records JSONB,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, project_id, build_id)
		);

		CREATE TABLE IF NOT EXISTS test_runs (
			collection_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			run_id INT NOT NULL,
			build_configuration_id INT,
			payload JSONB,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, project_id, run_id)
		);

		CREATE TABLE IF NOT EXISTS code_coverage (
			collection_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			build_id INT NOT NULL,
			coverage JSONB,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, project_id, build_id)
		);

		CREATE TABLE IF NOT EXISTS sonar_measures (
			collection_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			sonar_project_key TEXT NOT NULL,
			measured_at TIMESTAMPTZ NOT NULL,
			measures JSONB,
			quality_gate TEXT,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, project_id, sonar_project_key, measured_at)
		);

		CREATE TABLE IF NOT EXISTS work_items (
			collection_id TEXT NOT NULL,
			work_item_id INT NOT NULL,
			project TEXT,
			work_item_type TEXT,
			state TEXT,
			title TEXT,
			change_date TIMESTAMPTZ,
			created_date TIMESTAMPTZ,
			closed_date TIMESTAMPTZ,
			fields JSONB,
			relations JSONB,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, work_item_id)
		);

		CREATE TABLE IF NOT EXISTS work_item_state_changes (
			collection_id TEXT NOT NULL,
			work_item_id INT NOT NULL,
			state_changes JSONB,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, work_item_id)
		);

		CREATE TABLE IF NOT EXISTS sync_watermarks (
			collection_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			entity_kind TEXT NOT NULL,
			watermark TIMESTAMPTZ NOT NULL,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection_id, project_id, entity_kind)
		);
		`,
	)

	return
}

func (c *client) UpsertBuilds(ctx context.Context, scope api.Scope, builds []devopsapi.Build) (err error) {
	if len(builds) == 0 {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Insert("builds").
		Columns("collection_id", "project_id", "repository_id", "build_id", "definition_id", "definition_name", "status", "result", "source_branch", "start_time", "finish_time", "payload", "updated_at")

	for _, build := range builds {
		payloadBytes, marshalErr := json.Marshal(build)
		if marshalErr != nil {
			return marshalErr
		}

		query = query.Values(scope.Collection, scope.Project, build.Repository.ID, build.ID, build.Definition.ID, build.Definition.Name, build.Status, build.Result, build.SourceBranch, build.StartTime, build.FinishTime, payloadBytes, sq.Expr("now()"))
	}

	query = query.Suffix(
		`ON CONFLICT (collection_id, project_id, repository_id, build_id)
		DO UPDATE SET
			definition_id = excluded.definition_id,
			definition_name = excluded.definition_name,
			status = excluded.status,
			result = excluded.result,
			source_branch = excluded.source_branch,
			start_time = excluded.start_time,
			finish_time = excluded.finish_time,
			payload = excluded.payload,
			updated_at = now()`)

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

// GetBuildIDsWithTimeline returns the subset of buildIDs that already have a stored timeline
func (c *client) GetBuildIDsWithTimeline(ctx context.Context, scope api.Scope, buildIDs []int) (buildIDsWithTimeline []int, err error) {
	if len(buildIDs) == 0 {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select("build_id").
		From("build_timelines").
		Where(sq.Eq{"collection_id": scope.Collection}).
		Where(sq.Eq{"project_id": scope.Project}).
		Where(sq.Expr("build_id = ANY(?)", pq.Array(buildIDs)))

	rows, err := query.RunWith(c.databaseConnection).QueryContext(ctx)
	if err != nil {
		return
	}

	defer _CloseRows(rows)
	for rows.Next() {
		var buildID int
		if err = rows.Scan(&buildID); err != nil {
			return
		}
		buildIDsWithTimeline = append(buildIDsWithTimeline, buildID)
	}

	err = rows.Err()

	return
}

func (c *client) UpsertBuildTimelines(ctx context.Context, scope api.Scope, timelines []BuildTimeline) (err error) {
	if len(timelines) == 0 {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Insert("build_timelines").
		Columns("collection_id", "project_id", "build_id", "timeline_id", "records", "updated_at")

	for _, timeline := range timelines {
		recordsBytes, marshalErr := json.Marshal(timeline.Timeline.Records)
		if marshalErr != nil {
			return marshalErr
		}

		query = query.Values(scope.Collection, scope.Project, timeline.BuildID, timeline.Timeline.ID, recordsBytes, sq.Expr("now()"))
	}

	query = query.Suffix(
		`ON CONFLICT (collection_id, project_id, build_id)
		DO UPDATE SET
			timeline_id = excluded.timeline_id,
			records = excluded.records,
			updated_at = now()`)

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

func (c *client) UpsertTestCoverage(ctx context.Context, scope api.Scope, coverages []BuildCoverage) (err error) {
	if len(coverages) == 0 {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Insert("code_coverage").
		Columns("collection_id", "project_id", "build_id", "coverage", "updated_at")

	for _, coverage := range coverages {
		coverageBytes, marshalErr := json.Marshal(coverage.Coverage)
		if marshalErr != nil {
			return marshalErr
		}

		query = query.Values(scope.Collection, scope.Project, coverage.BuildID, coverageBytes, sq.Expr("now()"))
	}

	query = query.Suffix(
		`ON CONFLICT (collection_id, project_id, build_id)
		DO UPDATE SET
			coverage = excluded.coverage,
			updated_at = now()`)

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

func (c *client) UpsertSonarMeasures(ctx context.Context, scope api.Scope, snapshots []MeasureSnapshot) (err error) {
	if len(snapshots) == 0 {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Insert("sonar_measures").
		Columns("collection_id", "project_id", "sonar_project_key", "measured_at", "measures", "quality_gate", "updated_at")

	for _, snapshot := range snapshots {
		measuresBytes, marshalErr := json.Marshal(snapshot.Measures)
		if marshalErr != nil {
			return marshalErr
		}

		query = query.Values(scope.Collection, scope.Project, snapshot.SonarProjectKey, snapshot.MeasuredAt, measuresBytes, snapshot.QualityGate, sq.Expr("now()"))
	}

	query = query.Suffix(
		`ON CONFLICT (collection_id, project_id, sonar_project_key, measured_at)
		DO UPDATE SET
			measures = excluded.measures,
			quality_gate = excluded.quality_gate,
			updated_at = now()`)

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

// DeleteBuildData removes a set of builds and their dependent rows; each table is
// deleted independently, so a failed table leaves the others deleted and the
// whole call can be retried
func (c *client) DeleteBuildData(ctx context.Context, scope api.Scope, buildIDs []int) (err error) {
	if len(buildIDs) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.deleteScopedRows(ctx, scope, "builds", "build_id", buildIDs) })
	g.Go(func() error { return c.deleteScopedRows(ctx, scope, "build_timelines", "build_id", buildIDs) })
	g.Go(func() error { return c.deleteScopedRows(ctx, scope, "test_runs", "build_configuration_id", buildIDs) })
	g.Go(func() error { return c.deleteScopedRows(ctx, scope, "code_coverage", "build_id", buildIDs) })

	return g.Wait()
}

func (c *client) deleteScopedRows(ctx context.Context, scope api.Scope, table, buildIDColumn string, buildIDs []int) (err error) {

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Delete(table).
		Where(sq.Eq{"collection_id": scope.Collection}).
		Where(sq.Eq{"project_id": scope.Project}).
		Where(sq.Expr(buildIDColumn+" = ANY(?)", pq.Array(buildIDs)))

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

func (c *client) UpsertWorkItems(ctx context.Context, collection string, workItems []devopsapi.WorkItem) (err error) {
	if len(workItems) == 0 {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Insert("work_items").
		Columns("collection_id", "work_item_id", "project", "work_item_type", "state", "title", "change_date", "created_date", "closed_date", "fields", "relations", "updated_at")

	for _, workItem := range workItems {
		fieldsBytes, marshalErr := json.Marshal(workItem.Fields)
		if marshalErr != nil {
			return marshalErr
		}
		relationsBytes, marshalErr := json.Marshal(workItem.Relations)
		if marshalErr != nil {
			return marshalErr
		}

		query = query.Values(
			collection,
			workItem.ID,
			workItem.StringField(devopsapi.FieldTeamProject),
			workItem.StringField(devopsapi.FieldWorkItemType),
			workItem.StringField(devopsapi.FieldState),
			workItem.StringField(devopsapi.FieldTitle),
			workItem.TimeField(devopsapi.FieldChangedDate),
			workItem.TimeField(devopsapi.FieldCreatedDate),
			workItem.TimeField(devopsapi.FieldClosedDate),
			fieldsBytes,
			relationsBytes,
			sq.Expr("now()"),
		)
	}

	query = query.Suffix(
		`ON CONFLICT (collection_id, work_item_id)
		DO UPDATE SET
			project = excluded.project,
			work_item_type = excluded.work_item_type,
			state = excluded.state,
			title = excluded.title,
			change_date = excluded.change_date,
			created_date = excluded.created_date,
			closed_date = excluded.closed_date,
			fields = excluded.fields,
			relations = excluded.relations,
			updated_at = now()`)

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

func (c *client) UpsertWorkItemStateChanges(ctx context.Context, collection string, workItemID int, stateChanges []StateChange) (err error) {

	stateChangesBytes, err := json.Marshal(stateChanges)
	if err != nil {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Insert("work_item_state_changes").
		Columns("collection_id", "work_item_id", "state_changes", "updated_at").
		Values(collection, workItemID, stateChangesBytes, sq.Expr("now()")).
		Suffix(
			`ON CONFLICT (collection_id, work_item_id)
			DO UPDATE SET
				state_changes = excluded.state_changes,
				updated_at = now()`)

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

// DeleteWorkItems removes work items; their state change history is kept
func (c *client) DeleteWorkItems(ctx context.Context, collection string, workItemIDs []int) (err error) {
	if len(workItemIDs) == 0 {
		return
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Delete("work_items").
		Where(sq.Eq{"collection_id": collection}).
		Where(sq.Expr("work_item_id = ANY(?)", pq.Array(workItemIDs)))

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

// GetSyncWatermark returns the stored watermark for a scope and entity kind, or nil if none is stored yet
func (c *client) GetSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind) (watermark *time.Time, err error) {

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select("watermark").
		From("sync_watermarks").
		Where(sq.Eq{"collection_id": scope.Collection}).
		Where(sq.Eq{"project_id": scope.Project}).
		Where(sq.Eq{"entity_kind": string(kind)})

	var value time.Time
	if err = query.RunWith(c.databaseConnection).QueryRowContext(ctx).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return
	}

	watermark = &value

	return
}

func (c *client) UpsertSyncWatermark(ctx context.Context, scope api.Scope, kind api.EntityKind, watermark time.Time) (err error) {

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Insert("sync_watermarks").
		Columns("collection_id", "project_id", "entity_kind", "watermark", "updated_at").
		Values(scope.Collection, scope.Project, string(kind), watermark, sq.Expr("now()")).
		Suffix(
			`ON CONFLICT (collection_id, project_id, entity_kind)
			DO UPDATE SET
				watermark = excluded.watermark,
				updated_at = now()`)

	_, err = query.RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

func _CloseRows(rows *sql.Rows) {
	err := rows.Close()
	if err != nil {
		log.Error().Err(err).Msg("failed to close rows")
	}
}
