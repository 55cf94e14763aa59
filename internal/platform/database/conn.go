package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
)

// Conn is a connection checked out of the pool. Release must be called
// exactly once; further calls are no-ops.
type Conn struct {
	conn    *sql.Conn
	dialect Dialect
	once    sync.Once
}

// Acquire checks a connection out of the pool, waiting at most the configured
// acquire timeout. A wait that times out returns a ResourceExhausted error;
// cancellation of ctx itself returns ctx.Err().
func (db *DB) Acquire(ctx context.Context) (*Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	waitCtx := ctx
	if db.acquireTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, db.acquireTimeout)
		defer cancel()
	}

	start := time.Now()
	conn, err := db.pool.Conn(waitCtx)
	db.recordAcquire(ctx, start, err)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ResourceExhausted("no database connection available within "+db.acquireTimeout.String(), err)
		}
		return nil, classify("acquiring connection", err)
	}

	return &Conn{conn: conn, dialect: db.dialect}, nil
}

func (db *DB) recordAcquire(ctx context.Context, start time.Time, err error) {
	if db.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	db.metrics.DBAcquireDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(
			telemetry.AttrDBSystem.String(db.dialect.Name()),
			telemetry.AttrResult.String(result),
		),
	)
}

// Release returns the connection to the pool.
func (c *Conn) Release() {
	c.once.Do(func() {
		_ = c.conn.Close()
	})
}

// FetchOne runs q and returns its first row. ok is false when q matched
// nothing.
func (c *Conn) FetchOne(ctx context.Context, q Query, args ...any) (Row, bool, error) {
	return fetchOne(ctx, c.conn, c.dialect, q, args)
}

// FetchAll runs q and returns every row.
func (c *Conn) FetchAll(ctx context.Context, q Query, args ...any) ([]Row, error) {
	return fetchAll(ctx, c.conn, c.dialect, q, args)
}

// Execute runs a statement and returns the number of rows it affected.
func (c *Conn) Execute(ctx context.Context, q Query, args ...any) (int64, error) {
	return execute(ctx, c.conn, c.dialect, q, args)
}

// runner is the subset of *sql.Conn and *sql.Tx the statement helpers need.
type runner interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func fetchOne(ctx context.Context, r runner, d Dialect, q Query, args []any) (Row, bool, error) {
	rows, err := fetchAll(ctx, r, d, q, args)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

func fetchAll(ctx context.Context, r runner, d Dialect, q Query, args []any) ([]Row, error) {
	rows, err := r.QueryContext(ctx, d.Rebind(q), args...)
	if err != nil {
		return nil, failure(ctx, "query", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, failure(ctx, "reading columns", err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, domain.Fatal("malformed row", err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, failure(ctx, "iterating rows", err)
	}
	return out, nil
}

func execute(ctx context.Context, r runner, d Dialect, q Query, args []any) (int64, error) {
	res, err := r.ExecContext(ctx, d.Rebind(q), args...)
	if err != nil {
		return 0, failure(ctx, "exec", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, failure(ctx, "rows affected", err)
	}
	return n, nil
}

// failure reports a statement error. Once ctx is done the driver may answer
// with sql.ErrTxDone or an interrupt instead of the context error, so ctx.Err()
// wins.
func failure(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return classify(op, err)
}
