package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/ledger"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
)

// EmployeeRepository persists employees. Lookups report absence as a nil
// entity with a nil error.
type EmployeeRepository interface {
	// Create stores e and returns it with the storage-assigned ID.
	// Returns a DuplicateKey error matching employee.ErrDuplicateEmail when
	// the email is taken.
	Create(ctx context.Context, scope Scope, e *employee.Employee) (*employee.Employee, error)

	GetByID(ctx context.Context, scope Scope, id int64) (*employee.Employee, error)

	// GetByEmail looks an employee up by normalized email.
	GetByEmail(ctx context.Context, scope Scope, email string) (*employee.Employee, error)

	List(ctx context.Context, scope Scope, filter employee.Filter) ([]employee.Employee, error)

	// UpdateStatus moves the employee from one status to another. It reports
	// false when the stored status was not from.
	UpdateStatus(ctx context.Context, scope Scope, id int64, from, to employee.Status, now time.Time) (bool, error)

	// HoldActive locks the employee's row for the rest of scope if the
	// employee is active, so a concurrent status change waits for scope to
	// end. It reports false when the stored status is not active.
	HoldActive(ctx context.Context, scope Scope, id int64) (bool, error)
}

// TimesheetRepository persists timesheets.
type TimesheetRepository interface {
	// Create stores ts and returns it with the storage-assigned ID.
	// Returns a DuplicateKey error matching timesheet.ErrDuplicateDay when
	// the employee already has a timesheet for the work date.
	Create(ctx context.Context, scope Scope, ts *timesheet.Timesheet) (*timesheet.Timesheet, error)

	GetByID(ctx context.Context, scope Scope, id int64) (*timesheet.Timesheet, error)

	ListByEmployee(ctx context.Context, scope Scope, employeeID int64, filter timesheet.Filter) ([]timesheet.Timesheet, error)

	// UpdateStatus moves the timesheet from one status to another. It reports
	// false when the stored status was not from.
	UpdateStatus(ctx context.Context, scope Scope, id int64, from, to timesheet.Status, now time.Time) (bool, error)
}

// LedgerRepository appends and reads payroll ledger entries. Entries are
// never updated or deleted.
type LedgerRepository interface {
	Append(ctx context.Context, scope Scope, entry *ledger.Entry) error

	ListByTimesheet(ctx context.Context, scope Scope, timesheetID int64) ([]ledger.Entry, error)

	// Balance returns the sum of all entry amounts for the employee.
	Balance(ctx context.Context, scope Scope, employeeID int64) (int64, error)
}
