package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// Tx is an open transaction. It is the concrete ports.Scope handed to
// repositories; they run their statements through it.
type Tx struct {
	tx      *sql.Tx
	dialect Dialect

	mu    sync.Mutex
	hooks []func(ctx context.Context)
}

var (
	_ ports.Scope      = (*Tx)(nil)
	_ ports.Transactor = (*DB)(nil)
)

// AfterCommit queues fn to run after the transaction commits.
func (t *Tx) AfterCommit(fn func(ctx context.Context)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks = append(t.hooks, fn)
}

// FetchOne runs q inside the transaction and returns its first row.
func (t *Tx) FetchOne(ctx context.Context, q Query, args ...any) (Row, bool, error) {
	return fetchOne(ctx, t.tx, t.dialect, q, args)
}

// FetchAll runs q inside the transaction and returns every row.
func (t *Tx) FetchAll(ctx context.Context, q Query, args ...any) ([]Row, error) {
	return fetchAll(ctx, t.tx, t.dialect, q, args)
}

// Execute runs a statement inside the transaction and returns the number of
// rows it affected.
func (t *Tx) Execute(ctx context.Context, q Query, args ...any) (int64, error) {
	return execute(ctx, t.tx, t.dialect, q, args)
}

// TxFromScope returns the transaction behind scope. A nil scope yields nil.
// Scopes created by anything other than this package are a programming error.
func TxFromScope(scope ports.Scope) (*Tx, error) {
	if scope == nil {
		return nil, nil
	}
	tx, ok := scope.(*Tx)
	if !ok || tx == nil {
		return nil, domain.Fatal(fmt.Sprintf("unsupported transaction scope %T", scope), nil)
	}
	return tx, nil
}

// WithTransaction runs fn in a transaction.
//
// With a non-nil scope, fn runs inside that transaction and nothing is
// committed here; the owner of the scope decides the outcome. Otherwise a
// connection is acquired, a transaction begun at the configured isolation
// level, and fn's result decides: nil commits, an error or panic rolls back.
// A context that is cancelled before commit also rolls back. The connection
// is released on every path.
func (db *DB) WithTransaction(ctx context.Context, scope ports.Scope, fn func(ctx context.Context, scope ports.Scope) error) error {
	outer, err := TxFromScope(scope)
	if err != nil {
		return err
	}
	if outer != nil {
		return fn(ctx, outer)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := ctx.Deadline(); !ok && db.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.txTimeout)
		defer cancel()
	}

	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	sqlTx, err := conn.conn.BeginTx(ctx, &sql.TxOptions{Isolation: db.isolation})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return classify("begin transaction", err)
	}

	tx := &Tx{tx: sqlTx, dialect: db.dialect}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logger.WarnContext(ctx, "transaction rollback failed",
				slog.Any("error", rbErr),
			)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return classify("commit", err)
	}
	committed = true

	tx.runHooks(context.WithoutCancel(ctx))
	return nil
}

func (t *Tx) runHooks(ctx context.Context) {
	t.mu.Lock()
	hooks := t.hooks
	t.hooks = nil
	t.mu.Unlock()

	for _, fn := range hooks {
		fn(ctx)
	}
}
