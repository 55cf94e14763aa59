package ports

import "context"

// Scope is an opaque handle to an active unit of work. Workflows pass it to
// every repository call and delegated workflow that must share the same
// transaction. A nil Scope means no unit of work is active and each call
// commits on its own.
type Scope interface {
	// AfterCommit registers fn to run once the outermost unit of work has
	// committed. Hooks never run after a rollback.
	AfterCommit(fn func(ctx context.Context))
}

// Transactor opens units of work.
type Transactor interface {
	// WithTransaction runs fn inside a unit of work. When scope is non-nil fn
	// joins it instead of opening a new one. The unit commits if fn returns
	// nil and rolls back on error, panic, or context cancellation.
	WithTransaction(ctx context.Context, scope Scope, fn func(ctx context.Context, scope Scope) error) error
}

// Transact runs fn inside a unit of work and returns its result. It is
// WithTransaction for callbacks that produce a value.
func Transact[T any](ctx context.Context, tx Transactor, scope Scope, fn func(ctx context.Context, scope Scope) (T, error)) (T, error) {
	var out T
	err := tx.WithTransaction(ctx, scope, func(ctx context.Context, scope Scope) error {
		v, err := fn(ctx, scope)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
