// Package database is the storage adapter: a bounded database/sql pool with
// explicit transactions, driver-neutral row access, and translation of driver
// failures into the domain error taxonomy.
//
// Opening a pool:
//
//	db, err := database.Open(ctx, cfg.Database, metrics, logger)
//	defer db.Close()
//
// Single statements acquire a connection, run, and release it:
//
//	row, ok, err := db.FetchOne(ctx, selectEmployee, id)
//
// Multi-step writes share one transaction, passed explicitly:
//
//	err := db.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
//	    // hand scope to every repository call
//	})
//
// Queries are written with "?" placeholders and rebound per driver. Every value
// travels as a bound parameter; Query is a distinct type so untrusted strings
// cannot be concatenated into SQL without an explicit conversion.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Registered database/sql drivers: "pgx", "postgres", "sqlite".
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
)

// Query is a SQL statement with "?" placeholders. Declare queries as
// constants; only constants and other Query values compose without a cast.
type Query string

// Querier runs parameterized statements. *DB, *Conn, and *Tx implement it.
type Querier interface {
	// FetchOne returns the first row, or ok=false when there is none.
	FetchOne(ctx context.Context, q Query, args ...any) (row Row, ok bool, err error)
	FetchAll(ctx context.Context, q Query, args ...any) ([]Row, error)
	// Execute returns the number of affected rows.
	Execute(ctx context.Context, q Query, args ...any) (int64, error)
}

var (
	_ Querier = (*DB)(nil)
	_ Querier = (*Conn)(nil)
	_ Querier = (*Tx)(nil)
)

// DB is a bounded connection pool.
type DB struct {
	pool           *sql.DB
	dialect        Dialect
	acquireTimeout time.Duration
	txTimeout      time.Duration
	isolation      sql.IsolationLevel
	metrics        *telemetry.Metrics
	logger         *slog.Logger
}

// Open creates the pool and verifies connectivity. If metrics is nil, metric
// recording is skipped.
func Open(ctx context.Context, cfg config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*DB, error) {
	dialect, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	isolation, err := dialect.isolationLevel(cfg.Isolation)
	if err != nil {
		return nil, err
	}

	pool, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s pool: %w", cfg.Driver, err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	pool.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db := &DB{
		pool:           pool,
		dialect:        dialect,
		acquireTimeout: cfg.AcquireTimeout,
		txTimeout:      cfg.TxTimeout,
		isolation:      isolation,
		metrics:        metrics,
		logger:         logger,
	}

	if err := db.HealthCheck(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "database pool opened",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Duration("acquire_timeout", cfg.AcquireTimeout),
		slog.String("isolation", isolation.String()),
	)

	return db, nil
}

// Close closes the pool, waiting for checked-out connections to be released.
func (db *DB) Close() error {
	return db.pool.Close()
}

// Stats reports pool occupancy.
func (db *DB) Stats() sql.DBStats {
	return db.pool.Stats()
}

// Dialect returns the SQL dialect of the pool's driver.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Name identifies the pool in readiness results.
func (db *DB) Name() string {
	return "database"
}

// HealthCheck pings the database through the pool.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.pool.PingContext(ctx); err != nil {
		return classify("pinging database", err)
	}
	return nil
}

// FetchOne acquires a connection, runs q, and releases the connection.
func (db *DB) FetchOne(ctx context.Context, q Query, args ...any) (Row, bool, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	defer conn.Release()
	return conn.FetchOne(ctx, q, args...)
}

// FetchAll acquires a connection, runs q, and releases the connection.
func (db *DB) FetchAll(ctx context.Context, q Query, args ...any) ([]Row, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()
	return conn.FetchAll(ctx, q, args...)
}

// Execute acquires a connection, runs q, and releases the connection.
func (db *DB) Execute(ctx context.Context, q Query, args ...any) (int64, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()
	return conn.Execute(ctx, q, args...)
}
