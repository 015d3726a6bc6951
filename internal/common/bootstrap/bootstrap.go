package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/clock"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/config"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/constants"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/db"
	commonhttp "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/http"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/idgen"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/mongodb"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/server"
	exerciserepo "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/repository"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/tracker/service"
	userrepo "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/repository"
)

// App holds the process-scoped collaborators of the tracker service.
type App struct {
	Config    config.Config
	Log       *logger.Logger
	Users     userrepo.Repository
	Exercises exerciserepo.Repository
	IDs       idgen.IDGenerator
	Clock     clock.Clock
	Ping      commonhttp.PingFunc

	hooks []server.ShutdownHook
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.LogDir, cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// NewApp opens the store selected by cfg.Store.Driver. Background work
// started here (pool metrics) stops when ctx is cancelled.
func NewApp(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	app := &App{
		Config: cfg,
		Log:    log,
		Clock:  clock.NewRealClock(),
	}

	var err error
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		err = app.initPostgres(ctx)
	case config.DriverMongo:
		err = app.initMongo(ctx)
	case config.DriverMemory:
		app.initMemory()
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownStoreDriver, cfg.Store.Driver)
	}
	if err != nil {
		app.Close(context.Background())
		return nil, err
	}

	app.hooks = append(app.hooks, func(context.Context) error { return log.Close() })
	log.Infof("store initialized: driver=%s", cfg.Store.Driver)
	return app, nil
}

func (a *App) initPostgres(ctx context.Context) error {
	if a.Config.Store.AutoMigrate {
		if err := db.Migrate(ctx, a.Log, a.Config.Store.DatabaseURL); err != nil {
			return err
		}
	}

	pool, err := db.NewPool(ctx, a.Log, a.Config.Store.DatabaseURL, a.Config.ServiceName)
	if err != nil {
		return err
	}
	a.hooks = append(a.hooks, func(context.Context) error {
		pool.Close()
		return nil
	})

	db.StartPoolMetrics(ctx, pool, constants.DBPoolMetricsInterval)

	a.Users = userrepo.NewPgRepository(pool)
	a.Exercises = exerciserepo.NewPgRepository(pool)
	a.IDs = idgen.NewUUIDGenerator()
	a.Ping = pool.Ping
	return nil
}

func (a *App) initMongo(ctx context.Context) error {
	client, err := mongodb.Connect(ctx, a.Log, a.Config.Store.MongoURI, a.Config.ServiceName)
	if err != nil {
		return err
	}
	a.hooks = append(a.hooks, client.Disconnect)

	database := client.Database(a.Config.Store.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, database); err != nil {
		return err
	}

	a.Users = userrepo.NewMongoRepository(database)
	a.Exercises = exerciserepo.NewMongoRepository(database)
	a.IDs = mongodb.NewObjectIDGenerator()
	a.Ping = func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
	return nil
}

func (a *App) initMemory() {
	a.Log.Warn("using in-memory store, data is lost on restart")
	a.Users = userrepo.NewMemoryRepository()
	a.Exercises = exerciserepo.NewMemoryRepository()
	a.IDs = idgen.NewUUIDGenerator()
}

// Tracker builds the tracker service over the app's store.
func (a *App) Tracker() *service.TrackerService {
	return service.NewTrackerService(a.Users, a.Exercises, a.IDs, a.Clock, a.Log)
}

// ShutdownHooks releases the store handle, then the log file.
func (a *App) ShutdownHooks() []server.ShutdownHook {
	return a.hooks
}

// Close runs the shutdown hooks directly. Used when serving never started.
func (a *App) Close(ctx context.Context) {
	for _, hook := range a.hooks {
		if err := hook(ctx); err != nil {
			a.Log.Errorf("shutdown hook failed: %v", err)
		}
	}
	a.hooks = nil
}
