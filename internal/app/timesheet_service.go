package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/app/fanout"
	"github.com/jsamuelsen11/timekeeper/internal/app/invocation"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/ledger"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// Compile-time check that TimesheetService implements ports.TimesheetService.
var _ ports.TimesheetService = (*TimesheetService)(nil)

// TimesheetService implements the timesheet use cases. Submitting and
// rejecting keep the ledger in step with the timesheet inside one unit of
// work.
type TimesheetService struct {
	tx     ports.Transactor
	repos  Repositories
	authz  ports.Authorizer
	opts   options
	logger *slog.Logger
}

// NewTimesheetService creates a TimesheetService.
func NewTimesheetService(tx ports.Transactor, repos Repositories, authz ports.Authorizer, logger *slog.Logger, opts ...Option) *TimesheetService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TimesheetService{
		tx:     tx,
		repos:  repos,
		authz:  authz,
		opts:   buildOptions(opts),
		logger: logger,
	}
}

// SubmitTimesheet stores a timesheet and appends its accrual in one
// transaction. Entry rules are checked before any storage access.
func (s *TimesheetService) SubmitTimesheet(ctx context.Context, in ports.NewTimesheet) (_ *timesheet.Timesheet, err error) {
	ctx, inv := invocation.Begin(ctx, "SubmitTimesheet", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	now := s.opts.clock()
	ts := timesheet.New(in.EmployeeID, in.WorkDate, in.Hours, in.Note, now)

	var emp *employee.Employee
	err = inv.Validate(func() error {
		if err := timesheet.ValidateEntry(&ts, now); err != nil {
			return err
		}
		found, err := s.requireEmployee(ctx, nil, in.EmployeeID)
		if err != nil {
			return err
		}
		emp = found
		return timesheet.ValidateSubmission(&ts, emp, now)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "submitting timesheet",
		slog.Int64("employee_id", emp.ID),
		slog.String("work_date", ts.WorkDate.Format(time.DateOnly)),
	)

	var created *timesheet.Timesheet
	err = inv.Persist(ctx, func(ctx context.Context) error {
		return s.tx.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
			// The check above may have read a cached or since-terminated
			// employee. Holding the row here serializes against Terminate.
			active, err := s.repos.Employees.HoldActive(ctx, scope, emp.ID)
			if err != nil {
				return err
			}
			if !active {
				return domain.NewRuleViolation("employee_active", "employee_id", "employee is not active")
			}
			stored, err := s.repos.Timesheets.Create(ctx, scope, &ts)
			if err != nil {
				return err
			}
			accrual, err := ledger.Accrual(s.opts.newID(), stored, emp, now)
			if err != nil {
				return err
			}
			if err := s.repos.Ledger.Append(ctx, scope, &accrual); err != nil {
				return err
			}
			created = stored
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetTimesheet returns a timesheet or NotFound.
func (s *TimesheetService) GetTimesheet(ctx context.Context, id int64) (_ *timesheet.Timesheet, err error) {
	ctx, inv := invocation.Begin(ctx, "GetTimesheet", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	return s.requireTimesheet(ctx, nil, id)
}

// ListTimesheets returns an employee's timesheets matching filter.
func (s *TimesheetService) ListTimesheets(ctx context.Context, employeeID int64, filter timesheet.Filter) (_ []timesheet.Timesheet, err error) {
	ctx, inv := invocation.Begin(ctx, "ListTimesheets", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	err = inv.Validate(func() error {
		if err := timesheet.ValidateFilter(filter); err != nil {
			return err
		}
		_, err := s.requireEmployee(ctx, nil, employeeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repos.Timesheets.ListByEmployee(ctx, nil, employeeID, filter)
}

// ApproveTimesheet approves a submitted timesheet. The actor is authorized
// after the transition rules pass and before the single guarded write; a
// concurrent review surfaces as Conflict.
func (s *TimesheetService) ApproveTimesheet(ctx context.Context, actor ports.Actor, id int64) (_ *timesheet.Timesheet, err error) {
	ctx, inv := invocation.Begin(ctx, "ApproveTimesheet", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	var ts *timesheet.Timesheet
	err = inv.Validate(func() error {
		found, err := s.requireTimesheet(ctx, nil, id)
		if err != nil {
			return err
		}
		ts = found
		if err := timesheet.ValidateTransition(ts.Status, timesheet.StatusApproved); err != nil {
			return err
		}
		if err := timesheet.ValidateApprover(ts, actor.EmployeeID); err != nil {
			return err
		}
		return s.authz.Authorize(ctx, actor, ports.ActionApproveTimesheet, ts.EmployeeID)
	})
	if err != nil {
		return nil, err
	}

	now := s.opts.clock()
	err = inv.Persist(ctx, func(ctx context.Context) error {
		return s.transition(ctx, nil, ts, timesheet.StatusApproved, now)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "timesheet approved",
		slog.Int64("timesheet_id", ts.ID),
		slog.String("actor", actor.String()),
	)
	return ts, nil
}

// RejectTimesheet rejects a submitted timesheet and reverses its accrual in
// one transaction.
func (s *TimesheetService) RejectTimesheet(ctx context.Context, actor ports.Actor, id int64, reason string) (_ *timesheet.Timesheet, err error) {
	ctx, inv := invocation.Begin(ctx, "RejectTimesheet", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	var ts *timesheet.Timesheet
	err = inv.Validate(func() error {
		found, err := s.requireTimesheet(ctx, nil, id)
		if err != nil {
			return err
		}
		ts = found
		if err := timesheet.ValidateTransition(ts.Status, timesheet.StatusRejected); err != nil {
			return err
		}
		return s.authz.Authorize(ctx, actor, ports.ActionRejectTimesheet, ts.EmployeeID)
	})
	if err != nil {
		return nil, err
	}

	now := s.opts.clock()
	err = inv.Persist(ctx, func(ctx context.Context) error {
		return s.tx.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
			return s.reject(ctx, scope, ts, reason, now)
		})
	})
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// RejectWithin rejects a timesheet inside the caller's unit of work. It never
// opens its own and never authorizes: the calling use case owns both.
func (s *TimesheetService) RejectWithin(ctx context.Context, scope ports.Scope, id int64, reason string) (*timesheet.Timesheet, error) {
	if scope == nil {
		return nil, domain.Fatal("RejectWithin requires an active scope", nil)
	}

	ts, err := s.requireTimesheet(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := timesheet.ValidateTransition(ts.Status, timesheet.StatusRejected); err != nil {
		return nil, err
	}
	if err := s.reject(ctx, scope, ts, reason, s.opts.clock()); err != nil {
		return nil, err
	}
	return ts, nil
}

// reject moves ts to rejected and reverses its open accrual, updating ts in
// place on success.
func (s *TimesheetService) reject(ctx context.Context, scope ports.Scope, ts *timesheet.Timesheet, reason string, now time.Time) error {
	if err := s.transition(ctx, scope, ts, timesheet.StatusRejected, now); err != nil {
		return err
	}

	entries, err := s.repos.Ledger.ListByTimesheet(ctx, scope, ts.ID)
	if err != nil {
		return err
	}
	accrual, ok := ledger.OpenAccrual(entries)
	if !ok {
		return nil
	}
	reversal, err := ledger.Reversal(s.opts.newID(), accrual, reason, now)
	if err != nil {
		return err
	}
	return s.repos.Ledger.Append(ctx, scope, &reversal)
}

// transition applies a guarded status change and updates ts in place.
func (s *TimesheetService) transition(ctx context.Context, scope ports.Scope, ts *timesheet.Timesheet, to timesheet.Status, now time.Time) error {
	ok, err := s.repos.Timesheets.UpdateStatus(ctx, scope, ts.ID, ts.Status, to, now)
	if err != nil {
		return err
	}
	if !ok {
		return domain.Conflict(fmt.Sprintf("timesheet %d is no longer %s", ts.ID, ts.Status))
	}
	ts.Status = to
	ts.UpdatedAt = now
	return nil
}

// BulkApproveTimesheets approves each id as its own invocation, with bounded
// concurrency. Results keep the order of ids.
func (s *TimesheetService) BulkApproveTimesheets(ctx context.Context, actor ports.Actor, ids []int64) *ports.BulkApproveResult {
	results := fanout.Run(ctx, s.opts.bulkWorkers, ids, func(ctx context.Context, id int64) (*timesheet.Timesheet, error) {
		return s.ApproveTimesheet(ctx, actor, id)
	})

	out := &ports.BulkApproveResult{
		Approved: make([]timesheet.Timesheet, 0, len(ids)),
	}
	for i, r := range results {
		if r.Failed() {
			out.Errors = append(out.Errors, ports.BulkApproveError{TimesheetID: ids[i], Err: r.Err})
			continue
		}
		out.Approved = append(out.Approved, *r.Value)
	}

	s.logger.InfoContext(ctx, "bulk approval finished",
		slog.Int("requested", len(ids)),
		slog.Int("approved", len(out.Approved)),
		slog.Int("failed", len(out.Errors)),
	)
	return out
}

func (s *TimesheetService) requireTimesheet(ctx context.Context, scope ports.Scope, id int64) (*timesheet.Timesheet, error) {
	ts, err := s.repos.Timesheets.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, domain.NotFound("timesheet", id)
	}
	return ts, nil
}

func (s *TimesheetService) requireEmployee(ctx context.Context, scope ports.Scope, id int64) (*employee.Employee, error) {
	return requireEmployee(ctx, s.repos.Employees, scope, id)
}

func requireEmployee(ctx context.Context, repo ports.EmployeeRepository, scope ports.Scope, id int64) (*employee.Employee, error) {
	emp, err := repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.NotFound("employee", id)
	}
	return emp, nil
}
