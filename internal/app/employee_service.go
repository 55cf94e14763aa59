package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/app/invocation"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// Compile-time check that EmployeeService implements ports.EmployeeService.
var _ ports.EmployeeService = (*EmployeeService)(nil)

// TimesheetRejecter rejects a timesheet inside a unit of work the caller
// already owns. *TimesheetService implements it.
type TimesheetRejecter interface {
	RejectWithin(ctx context.Context, scope ports.Scope, id int64, reason string) (*timesheet.Timesheet, error)
}

// EmployeeService implements the employee use cases.
type EmployeeService struct {
	tx         ports.Transactor
	repos      Repositories
	authz      ports.Authorizer
	timesheets TimesheetRejecter
	opts       options
	logger     *slog.Logger
}

// NewEmployeeService creates an EmployeeService. Termination delegates
// timesheet rejection to timesheets.
func NewEmployeeService(tx ports.Transactor, repos Repositories, authz ports.Authorizer, timesheets TimesheetRejecter, logger *slog.Logger, opts ...Option) *EmployeeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EmployeeService{
		tx:         tx,
		repos:      repos,
		authz:      authz,
		timesheets: timesheets,
		opts:       buildOptions(opts),
		logger:     logger,
	}
}

// CreateEmployee validates and stores a new active employee. A named manager
// must exist and must not be terminated.
func (s *EmployeeService) CreateEmployee(ctx context.Context, in ports.NewEmployee) (_ *employee.Employee, err error) {
	ctx, inv := invocation.Begin(ctx, "CreateEmployee", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	e := employee.New(in.Name, in.Email, in.HourlyRateCents, in.ManagerID, s.opts.clock())

	err = inv.Validate(func() error {
		if err := employee.ValidateNew(&e); err != nil {
			return err
		}
		if e.ManagerID == nil {
			return nil
		}
		manager, err := s.repos.Employees.GetByID(ctx, nil, *e.ManagerID)
		if err != nil {
			return err
		}
		if manager == nil {
			return domain.NewRuleViolation("manager_exists", "manager_id",
				fmt.Sprintf("manager %d does not exist", *e.ManagerID))
		}
		if manager.Status == employee.StatusTerminated {
			return domain.NewRuleViolation("manager_active", "manager_id",
				fmt.Sprintf("manager %d is terminated", manager.ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating employee", slog.String("email", e.Email))

	return invocationPersist(ctx, inv, func(ctx context.Context) (*employee.Employee, error) {
		return s.repos.Employees.Create(ctx, nil, &e)
	})
}

// GetEmployee returns an employee or NotFound.
func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (_ *employee.Employee, err error) {
	ctx, inv := invocation.Begin(ctx, "GetEmployee", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	return requireEmployee(ctx, s.repos.Employees, nil, id)
}

// ListEmployees returns one page of employees. A zero Limit means
// employee.DefaultPageSize.
func (s *EmployeeService) ListEmployees(ctx context.Context, filter employee.Filter) (_ []employee.Employee, err error) {
	ctx, inv := invocation.Begin(ctx, "ListEmployees", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	if err := inv.Validate(func() error { return employee.ValidateFilter(filter) }); err != nil {
		return nil, err
	}
	if filter.Limit == 0 {
		filter.Limit = employee.DefaultPageSize
	}
	return s.repos.Employees.List(ctx, nil, filter)
}

// ChangeEmployeeStatus moves an employee between active and inactive with a
// single guarded update.
func (s *EmployeeService) ChangeEmployeeStatus(ctx context.Context, id int64, to employee.Status) (_ *employee.Employee, err error) {
	ctx, inv := invocation.Begin(ctx, "ChangeEmployeeStatus", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	var emp *employee.Employee
	err = inv.Validate(func() error {
		if to == employee.StatusTerminated {
			return domain.NewRuleViolation("terminate_explicitly", "status",
				"use the termination endpoint to terminate an employee")
		}
		found, err := requireEmployee(ctx, s.repos.Employees, nil, id)
		if err != nil {
			return err
		}
		emp = found
		return employee.ValidateStatusChange(emp.Status, to)
	})
	if err != nil {
		return nil, err
	}

	now := s.opts.clock()
	err = inv.Persist(ctx, func(ctx context.Context) error {
		return s.setStatus(ctx, nil, emp, to, now)
	})
	if err != nil {
		return nil, err
	}
	return emp, nil
}

// TerminateEmployee terminates an employee and rejects every submitted
// timesheet, all in one transaction. Rejection is delegated to the timesheet
// use cases with the same scope.
func (s *EmployeeService) TerminateEmployee(ctx context.Context, actor ports.Actor, id int64, reason string) (_ *ports.TerminationResult, err error) {
	ctx, inv := invocation.Begin(ctx, "TerminateEmployee", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	var emp *employee.Employee
	err = inv.Validate(func() error {
		found, err := requireEmployee(ctx, s.repos.Employees, nil, id)
		if err != nil {
			return err
		}
		emp = found
		if err := employee.ValidateStatusChange(emp.Status, employee.StatusTerminated); err != nil {
			return err
		}
		return s.authz.Authorize(ctx, actor, ports.ActionTerminate, emp.ID)
	})
	if err != nil {
		return nil, err
	}

	now := s.opts.clock()
	if reason == "" {
		reason = "employee terminated"
	}

	result, err := invocationPersist(ctx, inv, func(ctx context.Context) (*ports.TerminationResult, error) {
		return ports.Transact(ctx, s.tx, nil, func(ctx context.Context, scope ports.Scope) (*ports.TerminationResult, error) {
			if err := s.setStatus(ctx, scope, emp, employee.StatusTerminated, now); err != nil {
				return nil, err
			}
			pending, err := s.repos.Timesheets.ListByEmployee(ctx, scope, emp.ID,
				timesheet.Filter{Status: timesheet.StatusSubmitted})
			if err != nil {
				return nil, err
			}
			rejected := make([]int64, 0, len(pending))
			for _, ts := range pending {
				if _, err := s.timesheets.RejectWithin(ctx, scope, ts.ID, reason); err != nil {
					return nil, err
				}
				rejected = append(rejected, ts.ID)
			}
			return &ports.TerminationResult{Employee: emp, RejectedTimesheets: rejected}, nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "employee terminated",
		slog.Int64("employee_id", emp.ID),
		slog.String("actor", actor.String()),
		slog.Int("rejected_timesheets", len(result.RejectedTimesheets)),
	)
	return result, nil
}

// EmployeeBalance returns the sum of the employee's ledger entries in cents.
func (s *EmployeeService) EmployeeBalance(ctx context.Context, id int64) (_ int64, err error) {
	ctx, inv := invocation.Begin(ctx, "EmployeeBalance", s.opts.metrics)
	defer func() { inv.Finish(ctx, err) }()

	if _, err := requireEmployee(ctx, s.repos.Employees, nil, id); err != nil {
		return 0, err
	}
	return s.repos.Ledger.Balance(ctx, nil, id)
}

// setStatus applies a guarded status change and updates emp in place.
func (s *EmployeeService) setStatus(ctx context.Context, scope ports.Scope, emp *employee.Employee, to employee.Status, now time.Time) error {
	ok, err := s.repos.Employees.UpdateStatus(ctx, scope, emp.ID, emp.Status, to, now)
	if err != nil {
		return err
	}
	if !ok {
		return domain.Conflict(fmt.Sprintf("employee %d is no longer %s", emp.ID, emp.Status))
	}
	emp.Status = to
	emp.UpdatedAt = now
	return nil
}

// invocationPersist is Invocation.Persist for callbacks that produce a value.
func invocationPersist[T any](ctx context.Context, inv *invocation.Invocation, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := inv.Persist(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		out = v
		return err
	})
	return out, err
}
