package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/ledger"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
	"github.com/jsamuelsen11/timekeeper/mocks"
)

var fixedNow = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock() time.Time { return fixedNow }

// stubScope records AfterCommit hooks without running them.
type stubScope struct {
	hooks []func(context.Context)
}

func (s *stubScope) AfterCommit(fn func(context.Context)) {
	s.hooks = append(s.hooks, fn)
}

type serviceMocks struct {
	tx         *mocks.MockTransactor
	employees  *mocks.MockEmployeeRepository
	timesheets *mocks.MockTimesheetRepository
	ledger     *mocks.MockLedgerRepository
	authz      *mocks.MockAuthorizer
}

func newServiceMocks(t *testing.T) serviceMocks {
	t.Helper()
	return serviceMocks{
		tx:         mocks.NewMockTransactor(t),
		employees:  mocks.NewMockEmployeeRepository(t),
		timesheets: mocks.NewMockTimesheetRepository(t),
		ledger:     mocks.NewMockLedgerRepository(t),
		authz:      mocks.NewMockAuthorizer(t),
	}
}

func (m serviceMocks) repos() Repositories {
	return Repositories{Employees: m.employees, Timesheets: m.timesheets, Ledger: m.ledger}
}

// runInScope makes the transactor mock invoke the unit of work with scope.
func (m serviceMocks) runInScope(scope ports.Scope) {
	m.tx.EXPECT().WithTransaction(mock.Anything, nil, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ ports.Scope, fn func(context.Context, ports.Scope) error) error {
			return fn(ctx, scope)
		})
}

func newTestTimesheetService(m serviceMocks) *TimesheetService {
	return NewTimesheetService(m.tx, m.repos(), m.authz, discardLogger(),
		WithClock(fixedClock),
		WithIDGenerator(func() uuid.UUID { return uuid.MustParse("00000000-0000-0000-0000-000000000001") }),
	)
}

func activeEmployee(id int64) *employee.Employee {
	return &employee.Employee{
		ID:              id,
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Status:          employee.StatusActive,
		HourlyRateCents: 4000,
	}
}

func submittedTimesheet(id, employeeID int64) *timesheet.Timesheet {
	return &timesheet.Timesheet{
		ID:         id,
		EmployeeID: employeeID,
		WorkDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Hours:      8,
		Status:     timesheet.StatusSubmitted,
	}
}

func requireKind(t *testing.T, err error, want domain.Kind) {
	t.Helper()
	if got := domain.KindOf(err); got != want {
		t.Fatalf("error kind = %q (%v), want %q", got, err, want)
	}
}

func TestNewTimesheetService_NilLogger(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)

	svc := NewTimesheetService(m.tx, m.repos(), m.authz, nil)
	if svc.logger == nil {
		t.Fatal("NewTimesheetService(nil logger) should create a no-op logger, got nil")
	}
}

func TestTimesheetService_SubmitTimesheet(t *testing.T) {
	t.Parallel()

	t.Run("negative hours touch no repository", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)

		_, err := svc.SubmitTimesheet(context.Background(), ports.NewTimesheet{
			EmployeeID: 7,
			WorkDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Hours:      -5,
		})
		requireKind(t, err, domain.KindRuleViolation)

		var derr *domain.Error
		if !errors.As(err, &derr) {
			t.Fatalf("SubmitTimesheet() error = %T, want *domain.Error", err)
		}
		if derr.Message() != "hours must be ≥ 0" {
			t.Errorf("Message() = %q, want %q", derr.Message(), "hours must be ≥ 0")
		}
		if derr.Field() != "hours" {
			t.Errorf("Field() = %q, want hours", derr.Field())
		}
		m.employees.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
		m.tx.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown employee is not found", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)

		m.employees.EXPECT().GetByID(mock.Anything, nil, int64(999)).Return(nil, nil)

		_, err := svc.SubmitTimesheet(context.Background(), ports.NewTimesheet{
			EmployeeID: 999,
			WorkDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Hours:      8,
		})
		requireKind(t, err, domain.KindNotFound)
	})

	t.Run("timesheet and accrual share one scope", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)
		scope := &stubScope{}

		m.employees.EXPECT().GetByID(mock.Anything, nil, int64(7)).Return(activeEmployee(7), nil)
		m.runInScope(scope)
		m.employees.EXPECT().HoldActive(mock.Anything, scope, int64(7)).Return(true, nil)
		m.timesheets.EXPECT().Create(mock.Anything, scope, mock.Anything).
			RunAndReturn(func(_ context.Context, _ ports.Scope, ts *timesheet.Timesheet) (*timesheet.Timesheet, error) {
				stored := *ts
				stored.ID = 11
				return &stored, nil
			})
		m.ledger.EXPECT().Append(mock.Anything, scope, mock.MatchedBy(func(e *ledger.Entry) bool {
			return e.TimesheetID == 11 && e.Kind == ledger.KindAccrual && e.AmountCents == 32000
		})).Return(nil)

		got, err := svc.SubmitTimesheet(context.Background(), ports.NewTimesheet{
			EmployeeID: 7,
			WorkDate:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			Hours:      8,
		})
		if err != nil {
			t.Fatalf("SubmitTimesheet() error = %v", err)
		}
		if got.ID != 11 || got.Status != timesheet.StatusSubmitted {
			t.Errorf("SubmitTimesheet() = id %d status %s, want 11 submitted", got.ID, got.Status)
		}
		if !got.WorkDate.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("WorkDate = %v, want truncated to the day", got.WorkDate)
		}
	})

	t.Run("employee no longer active inside the scope writes nothing", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)
		scope := &stubScope{}

		m.employees.EXPECT().GetByID(mock.Anything, nil, int64(7)).Return(activeEmployee(7), nil)
		m.runInScope(scope)
		m.employees.EXPECT().HoldActive(mock.Anything, scope, int64(7)).Return(false, nil)

		_, err := svc.SubmitTimesheet(context.Background(), ports.NewTimesheet{
			EmployeeID: 7,
			WorkDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Hours:      8,
		})
		requireKind(t, err, domain.KindRuleViolation)
		m.timesheets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		m.ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ledger failure is returned unchanged", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)
		scope := &stubScope{}
		ledgerErr := domain.StorageUnavailable("ledger down", nil)

		m.employees.EXPECT().GetByID(mock.Anything, nil, int64(7)).Return(activeEmployee(7), nil)
		m.runInScope(scope)
		m.employees.EXPECT().HoldActive(mock.Anything, scope, int64(7)).Return(true, nil)
		m.timesheets.EXPECT().Create(mock.Anything, scope, mock.Anything).
			Return(submittedTimesheet(11, 7), nil)
		m.ledger.EXPECT().Append(mock.Anything, scope, mock.Anything).Return(ledgerErr)

		_, err := svc.SubmitTimesheet(context.Background(), ports.NewTimesheet{
			EmployeeID: 7,
			WorkDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Hours:      8,
		})
		if !errors.Is(err, ledgerErr) {
			t.Fatalf("SubmitTimesheet() error = %v, want %v", err, ledgerErr)
		}
	})
}

func TestTimesheetService_ApproveTimesheet(t *testing.T) {
	t.Parallel()
	manager := ports.Actor{EmployeeID: 1, Role: "manager"}

	t.Run("unauthorized actor writes nothing", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)
		clerk := ports.Actor{EmployeeID: 2, Role: "clerk"}

		m.timesheets.EXPECT().GetByID(mock.Anything, nil, int64(11)).Return(submittedTimesheet(11, 7), nil)
		m.authz.EXPECT().Authorize(mock.Anything, clerk, ports.ActionApproveTimesheet, int64(7)).
			Return(domain.Unauthorized("role clerk may not approve"))

		_, err := svc.ApproveTimesheet(context.Background(), clerk, 11)
		requireKind(t, err, domain.KindUnauthorized)
		m.timesheets.AssertNotCalled(t, "UpdateStatus",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("self approval fails before authorization", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)

		m.timesheets.EXPECT().GetByID(mock.Anything, nil, int64(11)).Return(submittedTimesheet(11, 1), nil)

		_, err := svc.ApproveTimesheet(context.Background(), manager, 11)
		requireKind(t, err, domain.KindRuleViolation)
	})

	t.Run("lost guarded update is a conflict", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)

		m.timesheets.EXPECT().GetByID(mock.Anything, nil, int64(11)).Return(submittedTimesheet(11, 7), nil)
		m.authz.EXPECT().Authorize(mock.Anything, manager, ports.ActionApproveTimesheet, int64(7)).Return(nil)
		m.timesheets.EXPECT().UpdateStatus(mock.Anything, nil, int64(11),
			timesheet.StatusSubmitted, timesheet.StatusApproved, fixedNow).Return(false, nil)

		_, err := svc.ApproveTimesheet(context.Background(), manager, 11)
		requireKind(t, err, domain.KindConflict)
	})

	t.Run("approves", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)

		m.timesheets.EXPECT().GetByID(mock.Anything, nil, int64(11)).Return(submittedTimesheet(11, 7), nil)
		m.authz.EXPECT().Authorize(mock.Anything, manager, ports.ActionApproveTimesheet, int64(7)).Return(nil)
		m.timesheets.EXPECT().UpdateStatus(mock.Anything, nil, int64(11),
			timesheet.StatusSubmitted, timesheet.StatusApproved, fixedNow).Return(true, nil)

		got, err := svc.ApproveTimesheet(context.Background(), manager, 11)
		if err != nil {
			t.Fatalf("ApproveTimesheet() error = %v", err)
		}
		if got.Status != timesheet.StatusApproved || !got.UpdatedAt.Equal(fixedNow) {
			t.Errorf("ApproveTimesheet() = %s at %v, want approved at %v", got.Status, got.UpdatedAt, fixedNow)
		}
	})
}

func TestTimesheetService_RejectWithin(t *testing.T) {
	t.Parallel()

	t.Run("requires a scope", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)

		_, err := svc.RejectWithin(context.Background(), nil, 11, "no")
		requireKind(t, err, domain.KindFatal)
	})

	t.Run("reverses the open accrual in the caller scope", func(t *testing.T) {
		t.Parallel()
		m := newServiceMocks(t)
		svc := newTestTimesheetService(m)
		scope := &stubScope{}
		accrual := ledger.Entry{
			ID:          uuid.MustParse("00000000-0000-0000-0000-0000000000aa"),
			EmployeeID:  7,
			TimesheetID: 11,
			Kind:        ledger.KindAccrual,
			AmountCents: 32000,
		}

		m.timesheets.EXPECT().GetByID(mock.Anything, scope, int64(11)).Return(submittedTimesheet(11, 7), nil)
		m.timesheets.EXPECT().UpdateStatus(mock.Anything, scope, int64(11),
			timesheet.StatusSubmitted, timesheet.StatusRejected, fixedNow).Return(true, nil)
		m.ledger.EXPECT().ListByTimesheet(mock.Anything, scope, int64(11)).Return([]ledger.Entry{accrual}, nil)
		m.ledger.EXPECT().Append(mock.Anything, scope, mock.MatchedBy(func(e *ledger.Entry) bool {
			return e.Kind == ledger.KindReversal && e.AmountCents == -32000 && e.ReversalOf == accrual.ID
		})).Return(nil)

		got, err := svc.RejectWithin(context.Background(), scope, 11, "terminated")
		if err != nil {
			t.Fatalf("RejectWithin() error = %v", err)
		}
		if got.Status != timesheet.StatusRejected {
			t.Errorf("Status = %s, want rejected", got.Status)
		}
	})
}

func TestTimesheetService_ListTimesheets_InvalidFilter(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	svc := newTestTimesheetService(m)

	_, err := svc.ListTimesheets(context.Background(), 7, timesheet.Filter{Status: "pending"})
	requireKind(t, err, domain.KindRuleViolation)
}
