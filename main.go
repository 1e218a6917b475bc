package main

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jprom "github.com/uber/jaeger-lib/metrics/prometheus"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/database"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/sonarapi"
	"github.com/rishumehrotra/engioscope-sub003/pkg/services/buildsync"
	"github.com/rishumehrotra/engioscope-sub003/pkg/services/workitemsync"
)

var (
	appgroup  string
	app       string
	version   string
	branch    string
	revision  string
	buildDate string
)

var (
	apiAddress     = kingpin.Flag("api-listen-address", "The address to listen on for api HTTP requests.").Default(":5000").String()
	configFilePath = kingpin.Flag("config-file-path", "The path to the config file.").Default("/configs/config.yaml").String()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// init log format from envvar ESTAFETTE_LOG_FORMAT
	foundation.InitLoggingFromEnv(foundation.NewApplicationInfo(appgroup, app, version, branch, revision, buildDate))

	// define channel used to gracefully shutdown the application
	gracefulShutdown, waitGroup := foundation.InitGracefulShutdownHandling()

	closer := initJaeger(app)
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())

	config := getConfig(ctx)

	databaseClient, devopsapiClient, sonarapiClient := getClients(ctx, config)

	buildsyncService, workitemsyncService := getServices(ctx, config, databaseClient, devopsapiClient, sonarapiClient)

	statusTracker := newSyncStatusTracker()

	go runScheduleLoop(ctx, waitGroup, statusTracker, "builds", config.Sync.BuildsIntervalSeconds, buildsyncService.SyncAll)
	go runScheduleLoop(ctx, waitGroup, statusTracker, "workitems", config.Sync.WorkItemsIntervalSeconds, workitemsyncService.SyncAll)
	go runScheduleLoop(ctx, waitGroup, statusTracker, "deletedsweep", config.Sync.DeletedSweepIntervalSeconds, workitemsyncService.SweepDeleted)

	foundation.InitMetricsWithPort(9001)

	srv := handleRequests(config, statusTracker)

	foundation.HandleGracefulShutdown(gracefulShutdown, waitGroup, func() {
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Graceful http server shutdown failed")
		}
	})
}

func getConfig(ctx context.Context) *api.APIConfig {

	configReader := api.NewConfigReader()

	config, err := configReader.ReadConfigFromFile(*configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed reading configuration from %v", *configFilePath)
	}

	// refresh config when the file changes, keeping the original pointer alive
	foundation.WatchForFileChanges(*configFilePath, func(event fsnotify.Event) {
		log.Info().Msgf("Config file %v was updated, refreshing config...", *configFilePath)

		newConfig, err := configReader.ReadConfigFromFile(*configFilePath)
		if err != nil {
			log.Warn().Err(err).Msgf("Failed reading updated configuration from %v, keeping current config", *configFilePath)
			return
		}

		err = copier.CopyWithOption(config, newConfig, copier.Option{DeepCopy: true})
		if err != nil {
			log.Warn().Err(err).Msg("Failed copying updated configuration, keeping current config")
		}
	})

	return config
}

func getClients(ctx context.Context, config *api.APIConfig) (databaseClient database.Client, devopsapiClient devopsapi.Client, sonarapiClient sonarapi.Client) {

	databaseClient = database.NewClient(config)
	databaseClient = database.NewMetricsClient(databaseClient,
		api.NewRequestCounter("database_client"),
		api.NewRequestHistogram("database_client"))
	databaseClient = database.NewLoggingClient(databaseClient)
	databaseClient = database.NewTracingClient(databaseClient)

	err := databaseClient.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed connecting to database")
	}
	err = databaseClient.AwaitDatabaseReadiness(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Database failed to become ready in time")
	}
	err = databaseClient.InitSchema(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed ensuring database schema")
	}

	devopsapiClient = devopsapi.NewClient(config)
	devopsapiClient = devopsapi.NewMetricsClient(devopsapiClient,
		api.NewRequestCounter("devopsapi_client"),
		api.NewRequestHistogram("devopsapi_client"))
	devopsapiClient = devopsapi.NewLoggingClient(devopsapiClient)
	devopsapiClient = devopsapi.NewTracingClient(devopsapiClient)

	if config.SonarQube != nil {
		sonarapiClient = sonarapi.NewClient(config)
		sonarapiClient = sonarapi.NewMetricsClient(sonarapiClient,
			api.NewRequestCounter("sonarapi_client"),
			api.NewRequestHistogram("sonarapi_client"))
		sonarapiClient = sonarapi.NewLoggingClient(sonarapiClient)
		sonarapiClient = sonarapi.NewTracingClient(sonarapiClient)
	}

	return
}

func getServices(ctx context.Context, config *api.APIConfig, databaseClient database.Client, devopsapiClient devopsapi.Client, sonarapiClient sonarapi.Client) (buildsyncService buildsync.Service, workitemsyncService workitemsync.Service) {

	buildsyncService = buildsync.NewService(config, devopsapiClient, sonarapiClient, databaseClient)
	buildsyncService = buildsync.NewMetricsService(buildsyncService,
		api.NewRequestCounter("buildsync_service"),
		api.NewRequestHistogram("buildsync_service"))
	buildsyncService = buildsync.NewLoggingService(buildsyncService)
	buildsyncService = buildsync.NewTracingService(buildsyncService)

	workitemsyncService = workitemsync.NewService(config, devopsapiClient, databaseClient)
	workitemsyncService = workitemsync.NewMetricsService(workitemsyncService,
		api.NewRequestCounter("workitemsync_service"),
		api.NewRequestHistogram("workitemsync_service"))
	workitemsyncService = workitemsync.NewLoggingService(workitemsyncService)
	workitemsyncService = workitemsync.NewTracingService(workitemsyncService)

	return
}

// runScheduleLoop runs a sync job immediately and then on a jittered interval
// until the context is cancelled; a failed pass is retried at the next tick
// because its watermark was not advanced
func runScheduleLoop(ctx context.Context, waitGroup *sync.WaitGroup, statusTracker *syncStatusTracker, jobName string, intervalSeconds int, run func(ctx context.Context) error) {

	for {
		waitGroup.Add(1)
		runID := statusTracker.markStarted(jobName)
		log.Info().Msgf("Starting %v sync run %v...", jobName, runID)

		err := run(ctx)
		statusTracker.markFinished(jobName, runID, err)
		if err != nil {
			log.Error().Err(err).Msgf("Sync run %v for %v failed", runID, jobName)
		} else {
			log.Info().Msgf("Finished %v sync run %v", jobName, runID)
		}
		waitGroup.Done()

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(foundation.ApplyJitter(intervalSeconds)) * time.Second):
		}
	}
}

func handleRequests(config *api.APIConfig, statusTracker *syncStatusTracker) *http.Server {

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(api.ZeroLogMiddleware())
	router.Use(api.OpenTracingMiddleware())

	router.GET("/liveness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive!")
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm ready!")
	})
	router.GET("/sync/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, statusTracker.snapshot())
	})

	srv := &http.Server{
		Addr:        *apiAddress,
		Handler:     router,
		ReadTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Starting api listener failed")
		}
	}()

	return srv
}

// initJaeger returns an instance of the Jaeger Tracer that is configured via
// environment variables
func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger), jaegercfg.Metrics(jprom.New()))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}

// syncRun reports on one run of a scheduled sync job
type syncRun struct {
	RunID      string     `json:"runId"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	Result     string     `json:"result"`
}

type syncStatusTracker struct {
	mutex sync.RWMutex
	runs  map[string]*syncRun
}

func newSyncStatusTracker() *syncStatusTracker {
	return &syncStatusTracker{
		runs: map[string]*syncRun{},
	}
}

func (t *syncStatusTracker) markStarted(jobName string) (runID string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	runID = uuid.New().String()
	t.runs[jobName] = &syncRun{
		RunID:     runID,
		StartedAt: time.Now().UTC(),
		Result:    "running",
	}

	return
}

func (t *syncStatusTracker) markFinished(jobName, runID string, err error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	run, ok := t.runs[jobName]
	if !ok || run.RunID != runID {
		return
	}

	finishedAt := time.Now().UTC()
	run.FinishedAt = &finishedAt
	run.Result = "succeeded"
	if err != nil {
		run.Result = "failed"
	}
}

func (t *syncStatusTracker) snapshot() map[string]syncRun {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	snapshot := make(map[string]syncRun, len(t.runs))
	for jobName, run := range t.runs {
		snapshot[jobName] = *run
	}

	return snapshot
}
