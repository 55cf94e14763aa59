// Package health tracks the components readiness depends on: the database
// pool, the read cache and the remote authorizer.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check so one hung dependency cannot
// stall the readiness check.
const DefaultCheckTimeout = 2 * time.Second

// Registry runs registered checks concurrently. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
	order    []string
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under its Name. A later checker with the same name
// replaces the earlier one.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checkers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// CheckAll runs every check in parallel, each under its own timeout, and
// returns the results keyed by name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := append([]string(nil), r.order...)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			errs[i] = c.HealthCheck(cctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = errs[i]
	}
	return results
}
