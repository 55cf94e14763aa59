package database

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// newTestDB opens a file-backed SQLite pool in a temp dir with the schema
// applied.
func newTestDB(t *testing.T, maxOpen int) *DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"
	cfg := config.DatabaseConfig{
		Driver:         "sqlite",
		DSN:            dsn,
		MaxOpenConns:   maxOpen,
		MaxIdleConns:   maxOpen,
		AcquireTimeout: 100 * time.Millisecond,
		TxTimeout:      5 * time.Second,
		Isolation:      "read_committed",
	}

	db, err := Open(context.Background(), cfg, nil, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.ApplySchema(context.Background()); err != nil {
		t.Fatalf("ApplySchema() error = %v", err)
	}
	return db
}

const (
	insertEmployee = `INSERT INTO employees (name, email, status, hourly_rate_cents, created_at, updated_at)
		VALUES (?, ?, 'active', 1000, ?, ?) RETURNING id`
	countEmployees = `SELECT COUNT(*) AS n FROM employees`
)

func insertTestEmployee(ctx context.Context, t *testing.T, q Querier, email string) (int64, error) {
	t.Helper()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	row, ok, err := q.FetchOne(ctx, insertEmployee, "Ada", email, now, now)
	if err != nil {
		return 0, err
	}
	if !ok {
		t.Fatal("INSERT ... RETURNING produced no row")
	}
	rr := row.Reader()
	id := rr.Int64("id")
	return id, rr.Err()
}

func employeeCount(t *testing.T, db *DB) int64 {
	t.Helper()
	row, _, err := db.FetchOne(context.Background(), countEmployees)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	rr := row.Reader()
	n := rr.Int64("n")
	if err := rr.Err(); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func requirePoolIdle(t *testing.T, db *DB) {
	t.Helper()
	require.Eventually(t, func() bool {
		return db.Stats().InUse == 0
	}, time.Second, 10*time.Millisecond, "connections still checked out: %d", db.Stats().InUse)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "mysql"}, nil, nil)
	if err == nil {
		t.Fatal("Open() expected error for unsupported driver")
	}
}

func TestDB_FetchOne_AbsentRow(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)

	row, ok, err := db.FetchOne(context.Background(), `SELECT id FROM employees WHERE id = ?`, 999)
	if err != nil {
		t.Fatalf("FetchOne() error = %v", err)
	}
	if ok || row != nil {
		t.Errorf("FetchOne() = (%v, %v), want no row", row, ok)
	}
}

func TestDB_ExecuteAndFetchAll(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := insertTestEmployee(ctx, t, db, email); err != nil {
			t.Fatalf("insert %s: %v", email, err)
		}
	}

	n, err := db.Execute(ctx, `UPDATE employees SET status = ? WHERE status = ?`, "inactive", "active")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Execute() affected %d rows, want 2", n)
	}

	rows, err := db.FetchAll(ctx, `SELECT email, status FROM employees ORDER BY email`)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("FetchAll() returned %d rows, want 2", len(rows))
	}
	rr := rows[1].Reader()
	if got := rr.String("email"); got != "b@example.com" {
		t.Errorf("email = %q, want b@example.com", got)
	}
	if got := rr.String("status"); got != "inactive" {
		t.Errorf("status = %q, want inactive", got)
	}
	requirePoolIdle(t, db)
}

func TestAcquire_TimeoutIsResourceExhausted(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 1)
	ctx := context.Background()

	held, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}

	_, err = db.Acquire(ctx)
	if !errors.Is(err, domain.ErrResourceExhausted) {
		t.Fatalf("second Acquire() error = %v, want ResourceExhausted", err)
	}

	held.Release()
	held.Release()

	conn, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() after release error = %v", err)
	}
	conn.Release()
	requirePoolIdle(t, db)
}

func TestAcquire_CancelledContext(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.Acquire(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Acquire() error = %v, want context.Canceled", err)
	}
}

func TestWithTransaction_Commit(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)

	var hookRan atomic.Bool
	err := db.WithTransaction(context.Background(), nil, func(ctx context.Context, scope ports.Scope) error {
		tx, err := TxFromScope(scope)
		if err != nil {
			return err
		}
		scope.AfterCommit(func(context.Context) { hookRan.Store(true) })
		_, err = insertTestEmployee(ctx, t, tx, "a@example.com")
		return err
	})
	if err != nil {
		t.Fatalf("WithTransaction() error = %v", err)
	}

	if got := employeeCount(t, db); got != 1 {
		t.Errorf("employees = %d, want 1", got)
	}
	if !hookRan.Load() {
		t.Error("AfterCommit hook did not run")
	}
	requirePoolIdle(t, db)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)
	boom := errors.New("boom")

	var hookRan atomic.Bool
	err := db.WithTransaction(context.Background(), nil, func(ctx context.Context, scope ports.Scope) error {
		tx, _ := TxFromScope(scope)
		scope.AfterCommit(func(context.Context) { hookRan.Store(true) })
		if _, err := insertTestEmployee(ctx, t, tx, "a@example.com"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTransaction() error = %v, want %v", err, boom)
	}
	if got := employeeCount(t, db); got != 0 {
		t.Errorf("employees = %d, want 0 after rollback", got)
	}
	if hookRan.Load() {
		t.Error("AfterCommit hook ran after rollback")
	}
	requirePoolIdle(t, db)
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = db.WithTransaction(context.Background(), nil, func(ctx context.Context, scope ports.Scope) error {
			tx, _ := TxFromScope(scope)
			if _, err := insertTestEmployee(ctx, t, tx, "a@example.com"); err != nil {
				return err
			}
			panic("mid-transaction")
		})
	}()

	if got := employeeCount(t, db); got != 0 {
		t.Errorf("employees = %d, want 0 after panic", got)
	}
	requirePoolIdle(t, db)
}

func TestWithTransaction_Cancellation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)
	before := db.Stats().InUse

	ctx, cancel := context.WithCancel(context.Background())
	err := db.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
		tx, _ := TxFromScope(scope)
		if _, err := insertTestEmployee(ctx, t, tx, "a@example.com"); err != nil {
			return err
		}
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("WithTransaction() error = %v, want context.Canceled", err)
	}

	if got := employeeCount(t, db); got != 0 {
		t.Errorf("employees = %d, want 0 after cancellation", got)
	}
	require.Eventually(t, func() bool {
		return db.Stats().InUse == before
	}, time.Second, 10*time.Millisecond)
}

func TestWithTransaction_StatementAfterCancelReportsContextError(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	err := db.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
		tx, _ := TxFromScope(scope)
		if _, err := insertTestEmployee(ctx, t, tx, "a@example.com"); err != nil {
			return err
		}
		cancel()
		_, err := tx.Execute(ctx, `UPDATE employees SET status = ?`, "inactive")
		return err
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("WithTransaction() error = %v, want context.Canceled", err)
	}
	if got := employeeCount(t, db); got != 0 {
		t.Errorf("employees = %d, want 0 after cancellation", got)
	}
	requirePoolIdle(t, db)
}

func TestWithTransaction_NestedJoinsScope(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 1)
	boom := errors.New("ledger failed")

	err := db.WithTransaction(context.Background(), nil, func(ctx context.Context, outer ports.Scope) error {
		tx, _ := TxFromScope(outer)
		if _, err := insertTestEmployee(ctx, t, tx, "a@example.com"); err != nil {
			return err
		}
		// A pool of one: opening a second transaction here would time out.
		return db.WithTransaction(ctx, outer, func(ctx context.Context, inner ports.Scope) error {
			if inner != outer {
				t.Error("nested call did not reuse the outer scope")
			}
			innerTx, _ := TxFromScope(inner)
			if _, err := insertTestEmployee(ctx, t, innerTx, "b@example.com"); err != nil {
				return err
			}
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTransaction() error = %v, want %v", err, boom)
	}
	if got := employeeCount(t, db); got != 0 {
		t.Errorf("employees = %d, want 0: inner failure must roll back the whole unit", got)
	}
	requirePoolIdle(t, db)
}

type foreignScope struct{}

func (foreignScope) AfterCommit(func(context.Context)) {}

func TestWithTransaction_ForeignScopeIsFatal(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 1)

	called := false
	err := db.WithTransaction(context.Background(), foreignScope{}, func(context.Context, ports.Scope) error {
		called = true
		return nil
	})
	if domain.KindOf(err) != domain.KindFatal {
		t.Errorf("KindOf(err) = %q, want fatal", domain.KindOf(err))
	}
	if called {
		t.Error("fn ran with a foreign scope")
	}
}

func TestTransact_ReturnsValue(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 2)

	id, err := ports.Transact(context.Background(), db, nil, func(ctx context.Context, scope ports.Scope) (int64, error) {
		tx, _ := TxFromScope(scope)
		return insertTestEmployee(ctx, t, tx, "a@example.com")
	})
	if err != nil {
		t.Fatalf("Transact() error = %v", err)
	}
	if id <= 0 {
		t.Errorf("Transact() id = %d, want positive", id)
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()
	db := newTestDB(t, 1)

	if db.Name() != "database" {
		t.Errorf("Name() = %q, want database", db.Name())
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	_ = db.Close()
	err := db.HealthCheck(context.Background())
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Errorf("HealthCheck() after Close error = %v, want StorageUnavailable", err)
	}
}
