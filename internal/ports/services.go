package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
)

// EmployeeService defines the service port for employee use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type EmployeeService interface {
	// CreateEmployee validates and stores a new active employee.
	// Returns a RuleViolation before touching storage when the input is
	// invalid, or a DuplicateKey error when the email is taken.
	CreateEmployee(ctx context.Context, in NewEmployee) (*employee.Employee, error)

	// GetEmployee returns the employee or a NotFound error.
	GetEmployee(ctx context.Context, id int64) (*employee.Employee, error)

	ListEmployees(ctx context.Context, filter employee.Filter) ([]employee.Employee, error)

	// ChangeEmployeeStatus moves an employee between active and inactive.
	// Termination goes through TerminateEmployee.
	ChangeEmployeeStatus(ctx context.Context, id int64, to employee.Status) (*employee.Employee, error)

	// TerminateEmployee terminates the employee and rejects every pending
	// timesheet in the same unit of work.
	TerminateEmployee(ctx context.Context, actor Actor, id int64, reason string) (*TerminationResult, error)

	// EmployeeBalance returns the employee's ledger balance in cents.
	EmployeeBalance(ctx context.Context, id int64) (int64, error)
}

// TimesheetService defines the service port for timesheet use cases.
type TimesheetService interface {
	// SubmitTimesheet stores the timesheet and its ledger accrual atomically.
	SubmitTimesheet(ctx context.Context, in NewTimesheet) (*timesheet.Timesheet, error)

	GetTimesheet(ctx context.Context, id int64) (*timesheet.Timesheet, error)

	ListTimesheets(ctx context.Context, employeeID int64, filter timesheet.Filter) ([]timesheet.Timesheet, error)

	// ApproveTimesheet approves a submitted timesheet after checking the
	// actor is allowed to.
	ApproveTimesheet(ctx context.Context, actor Actor, id int64) (*timesheet.Timesheet, error)

	// RejectTimesheet rejects a submitted timesheet and reverses its accrual
	// atomically.
	RejectTimesheet(ctx context.Context, actor Actor, id int64, reason string) (*timesheet.Timesheet, error)

	// BulkApproveTimesheets approves several timesheets concurrently. Each
	// approval succeeds or fails independently.
	BulkApproveTimesheets(ctx context.Context, actor Actor, ids []int64) *BulkApproveResult
}

// NewEmployee carries the input for CreateEmployee.
type NewEmployee struct {
	Name            string
	Email           string
	HourlyRateCents int64
	ManagerID       *int64
}

// NewTimesheet carries the input for SubmitTimesheet.
type NewTimesheet struct {
	EmployeeID int64
	WorkDate   time.Time
	Hours      float64
	Note       string
}

// TerminationResult reports what TerminateEmployee changed.
type TerminationResult struct {
	Employee           *employee.Employee
	RejectedTimesheets []int64
}

// BulkApproveError records a single failed approval within a bulk operation.
type BulkApproveError struct {
	TimesheetID int64
	Err         error
}

// BulkApproveResult holds the outcomes of a bulk approval.
// Approved contains successful approvals; Errors contains per-item failures.
type BulkApproveResult struct {
	Approved []timesheet.Timesheet
	Errors   []BulkApproveError
}
