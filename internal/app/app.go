// Package app provides application services that orchestrate use cases by
// coordinating between domain rules and infrastructure through port
// interfaces.
//
// Every use case follows the same shape: validate with the domain rules
// (reads allowed), stop with no writes on the first rule failure, then
// persist. Use cases with more than one write open a unit of work through
// ports.Transactor and pass its scope to every repository call and every
// delegated use case. Errors are returned unchanged.
package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// Repositories groups the persistence ports the services depend on.
type Repositories struct {
	Employees  ports.EmployeeRepository
	Timesheets ports.TimesheetRepository
	Ledger     ports.LedgerRepository
}

const defaultBulkWorkers = 4

type options struct {
	now         func() time.Time
	newID       func() uuid.UUID
	metrics     *telemetry.Metrics
	bulkWorkers int
}

// Option configures a service.
type Option func(*options)

// WithClock replaces the wall clock. Times are converted to UTC.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces uuid.New for ledger entry ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(o *options) { o.newID = newID }
}

// WithMetrics enables invocation metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithBulkWorkers bounds the concurrency of bulk operations.
func WithBulkWorkers(n int) Option {
	return func(o *options) { o.bulkWorkers = n }
}

func buildOptions(opts []Option) options {
	o := options{
		now:         time.Now,
		newID:       uuid.New,
		bulkWorkers: defaultBulkWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.bulkWorkers < 1 {
		o.bulkWorkers = 1
	}
	return o
}

func (o options) clock() time.Time {
	return o.now().UTC()
}
