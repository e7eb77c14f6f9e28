// Package server initializes and runs the satstream server. It restores the
// ledger from the snapshot store, runs the accrual and snapshot jobs, serves
// gRPC and saves a final snapshot on graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/satstream/internal/logging"
	"github.com/dmitrijs2005/satstream/internal/server/auth"
	"github.com/dmitrijs2005/satstream/internal/server/config"
	"github.com/dmitrijs2005/satstream/internal/server/ledger"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/satstream/internal/server/scheduler"
	"github.com/dmitrijs2005/satstream/internal/server/services"
	"github.com/dmitrijs2005/satstream/internal/server/templates"
	"github.com/dmitrijs2005/satstream/internal/timex"

	gs "github.com/dmitrijs2005/satstream/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	clock      timex.Clock
	db         *sql.DB
	streams    *services.StreamService
	statements *services.StatementService
	snapshots  *services.SnapshotService
}

// NewApp builds the service graph. When a database is configured it is
// migrated and the last snapshot is loaded before NewApp returns.
func NewApp(ctx context.Context, c *config.Config, logOutput io.Writer) (*App, error) {

	logger := logging.NewJSONLogger(logOutput, c.LogLevel)
	clock := timex.Real()

	streams := services.NewStreamService(ledger.New(), templates.NewRegistry(), auth.ContextIdentity{}, clock, logger, c)
	statements := services.NewStatementService(streams, auth.ContextIdentity{}, clock, c, logger)

	app := &App{config: c, logger: logger, clock: clock, streams: streams, statements: statements}

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database configured, state is kept in memory only")
		return app, nil
	}

	db, rm, err := repomanager.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	snapshots := services.NewSnapshotService(db, rm, streams, logger)
	if err := snapshots.Load(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("snapshot load error: %w", err)
	}

	app.db = db
	app.snapshots = snapshots
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) jobs() []scheduler.Job {
	jobs := []scheduler.Job{{
		Name:     "accrual",
		Interval: app.config.TickInterval,
		Run: func(ctx context.Context) error {
			app.streams.Tick(ctx)
			return nil
		},
	}}
	if app.snapshots != nil {
		jobs = append(jobs, scheduler.Job{
			Name:     "snapshot",
			Interval: app.config.SnapshotInterval,
			Run:      app.snapshots.Save,
		})
	}
	return jobs
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.streams, app.statements, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

// Run serves until ctx is cancelled or a signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	sched := scheduler.New(app.logger, app.jobs()...)
	sched.Start(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
	sched.Wait()

	app.shutdown()
}

// shutdown runs the last sweep, saves a final snapshot and closes the DB.
func (app *App) shutdown() {
	ctx := context.Background()

	app.streams.Tick(ctx)

	if app.snapshots != nil {
		if err := app.snapshots.Save(ctx); err != nil {
			app.logger.Error(ctx, "final snapshot failed", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close failed", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
