// Package databasetest opens throwaway SQLite databases for tests.
package databasetest

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
)

// Config returns a SQLite configuration backed by a file in a fresh temp
// directory. Foreign keys are enforced and writers take the lock up front.
func Config(t *testing.T) config.DatabaseConfig {
	t.Helper()

	return config.DatabaseConfig{
		Driver: "sqlite",
		DSN: "file:" + filepath.Join(t.TempDir(), "timekeeper.db") +
			"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate",
		MaxOpenConns:   4,
		MaxIdleConns:   4,
		AcquireTimeout: 2 * time.Second,
		TxTimeout:      5 * time.Second,
		Isolation:      "default",
	}
}

// Open opens a database from cfg, applies the schema, and closes it when the
// test ends.
func Open(t *testing.T, cfg config.DatabaseConfig) *database.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg, nil, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.ApplySchema(ctx); err != nil {
		t.Fatalf("applying test schema: %v", err)
	}
	return db
}

// New is Open with the default Config.
func New(t *testing.T) *database.DB {
	t.Helper()
	return Open(t, Config(t))
}
