// Command server runs the timekeeper HTTP API. Dependencies are wired with
// samber/do; SIGINT or SIGTERM drains requests before storage closes.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/authz"
	"github.com/jsamuelsen11/timekeeper/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/timekeeper/internal/adapters/http"
	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/timekeeper/internal/adapters/repository"
	"github.com/jsamuelsen11/timekeeper/internal/app"
	"github.com/jsamuelsen11/timekeeper/internal/platform/cache"
	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
	"github.com/jsamuelsen11/timekeeper/internal/platform/health"
	"github.com/jsamuelsen11/timekeeper/internal/platform/httpclient"
	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const (
	drainTimeout   = 15 * time.Second
	flushTimeout   = 5 * time.Second
	startupTimeout = 30 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv("APP_PROFILE")); err != nil {
		fmt.Fprintf(os.Stderr, "timekeeper: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration for profile, wires the service and serves until
// ctx is canceled.
func run(ctx context.Context, profile string) error {
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	tel, err := telemetry.Setup(ctx, cfg.Telemetry, profile)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := tel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry flush failed", slog.Any("error", err))
		}
	}()

	// Storage is opened before the graph so a bad DSN fails startup.
	startCtx, cancelStart := context.WithTimeout(ctx, startupTimeout)
	defer cancelStart()

	db, err := openDatabase(startCtx, cfg, tel.Metrics, logger)
	if err != nil {
		return err
	}
	defer closeQuietly(logger, "database", db.Close)

	cacheClient, err := cache.New(startCtx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("connecting cache: %w", err)
	}
	if cacheClient != nil {
		defer closeQuietly(logger, "cache", cacheClient.Close)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)
	do.ProvideValue(injector, db)
	do.ProvideValue(injector, cacheClient)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	watchReadiness(injector, db, cacheClient)

	return serve(ctx, server, logger)
}

// watchReadiness registers every dependency readiness depends on. The
// authorizer only counts in remote mode.
func watchReadiness(injector do.Injector, db *database.DB, cacheClient *cache.Client) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(db)
	if cacheClient != nil {
		registry.Register(cacheClient)
	}
	if checker, ok := do.MustInvoke[ports.Authorizer](injector).(ports.HealthChecker); ok {
		registry.Register(checker)
	}
}

// serve runs server until it fails or ctx is canceled, then drains in-flight
// requests. The deferred closes in run release the pool only after this
// returns.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Start(); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("draining requests", slog.Any("cause", context.Cause(gctx)))

		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), drainTimeout)
		defer cancel()
		return server.Shutdown(drainCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// openDatabase opens the pool, optionally applies the embedded schema, and
// registers pool gauges when telemetry is enabled.
func openDatabase(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(ctx, cfg.Database, metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if cfg.Database.ApplySchema {
		if err := db.ApplySchema(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	if metrics != nil {
		if err := db.RegisterMetrics(metrics.Meter()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("registering database metrics: %w", err)
		}
	}

	return db, nil
}

func closeQuietly(logger *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("close failed", slog.String("component", name), slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (app.Repositories, error) {
		db := do.MustInvoke[*database.DB](i)

		var employees ports.EmployeeRepository = repository.NewEmployees(db)
		if c := do.MustInvoke[*cache.Client](i); c != nil {
			employees = repository.NewCachedEmployees(employees, c.Client, cfg.Cache.TTL, logger)
		}

		return app.Repositories{
			Employees:  employees,
			Timesheets: repository.NewTimesheets(db),
			Ledger:     repository.NewLedger(db),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Transactor, error) {
		return do.MustInvoke[*database.DB](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Authorizer, error) {
		if cfg.Authz.Mode != "remote" {
			return authz.NewStatic(cfg.Authz.ApproverRoles), nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Client, "authz-api", metrics, logger)
		return acl.NewPolicyClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) ([]app.Option, error) {
		return []app.Option{
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			app.WithBulkWorkers(cfg.Workflow.BulkMaxWorkers),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TimesheetService, error) {
		return app.NewTimesheetService(
			do.MustInvoke[ports.Transactor](i),
			do.MustInvoke[app.Repositories](i),
			do.MustInvoke[ports.Authorizer](i),
			logger,
			do.MustInvoke[[]app.Option](i)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.EmployeeService, error) {
		return app.NewEmployeeService(
			do.MustInvoke[ports.Transactor](i),
			do.MustInvoke[app.Repositories](i),
			do.MustInvoke[ports.Authorizer](i),
			do.MustInvoke[*app.TimesheetService](i),
			logger,
			do.MustInvoke[[]app.Option](i)...,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EmployeeHandler, error) {
		return handlers.NewEmployeeHandler(do.MustInvoke[*app.EmployeeService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TimesheetHandler, error) {
		return handlers.NewTimesheetHandler(do.MustInvoke[*app.TimesheetService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		employeeH := do.MustInvoke[*handlers.EmployeeHandler](i)
		timesheetH := do.MustInvoke[*handlers.TimesheetHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(employeeH, timesheetH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
