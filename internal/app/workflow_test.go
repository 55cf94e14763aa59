package app_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/authz"
	"github.com/jsamuelsen11/timekeeper/internal/adapters/repository"
	"github.com/jsamuelsen11/timekeeper/internal/app"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/ledger"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database/databasetest"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

var now = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

func day(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

// flakyLedger fails every Append while failing is set. beforeAppend, when
// set, runs ahead of each write.
type flakyLedger struct {
	ports.LedgerRepository
	failing      atomic.Bool
	beforeAppend func()
}

func (l *flakyLedger) Append(ctx context.Context, scope ports.Scope, entry *ledger.Entry) error {
	if l.beforeAppend != nil {
		l.beforeAppend()
	}
	if l.failing.Load() {
		return domain.StorageUnavailable("ledger write failed", nil)
	}
	return l.LedgerRepository.Append(ctx, scope, entry)
}

// staleEmployees answers unscoped reads with an active copy, the way a cache
// entry filled before a termination would.
type staleEmployees struct {
	ports.EmployeeRepository
}

func (r staleEmployees) GetByID(ctx context.Context, scope ports.Scope, id int64) (*employee.Employee, error) {
	e, err := r.EmployeeRepository.GetByID(ctx, scope, id)
	if err != nil || e == nil || scope != nil {
		return e, err
	}
	stale := *e
	stale.Status = employee.StatusActive
	return &stale, nil
}

type workflow struct {
	db         *database.DB
	ledger     *flakyLedger
	employees  *app.EmployeeService
	timesheets *app.TimesheetService
	manager    *employee.Employee
	worker     *employee.Employee
}

func newWorkflow(t *testing.T) *workflow {
	t.Helper()
	db := databasetest.New(t)
	fl := &flakyLedger{LedgerRepository: repository.NewLedger(db)}
	repos := app.Repositories{
		Employees:  repository.NewEmployees(db),
		Timesheets: repository.NewTimesheets(db),
		Ledger:     fl,
	}
	policy := authz.NewStatic([]string{"manager"})
	clock := app.WithClock(func() time.Time { return now })

	ts := app.NewTimesheetService(db, repos, policy, nil, clock)
	emps := app.NewEmployeeService(db, repos, policy, ts, nil, clock)

	ctx := context.Background()
	manager, err := emps.CreateEmployee(ctx, ports.NewEmployee{Name: "Grace Hopper", Email: "grace@example.com", HourlyRateCents: 9000})
	require.NoError(t, err)
	worker, err := emps.CreateEmployee(ctx, ports.NewEmployee{
		Name: "Ada Lovelace", Email: "ada@example.com", HourlyRateCents: 4000, ManagerID: &manager.ID,
	})
	require.NoError(t, err)

	return &workflow{db: db, ledger: fl, employees: emps, timesheets: ts, manager: manager, worker: worker}
}

func (w *workflow) actor() ports.Actor {
	return ports.Actor{EmployeeID: w.manager.ID, Role: "manager"}
}

func (w *workflow) submit(t *testing.T, d int, hours float64) *timesheet.Timesheet {
	t.Helper()
	ts, err := w.timesheets.SubmitTimesheet(context.Background(), ports.NewTimesheet{
		EmployeeID: w.worker.ID, WorkDate: day(d), Hours: hours,
	})
	require.NoError(t, err)
	return ts
}

func TestWorkflow_DuplicateEmailIsConflict(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)

	_, err := w.employees.CreateEmployee(context.Background(), ports.NewEmployee{Name: "Other Ada", Email: "ADA@example.com"})
	require.Error(t, err)
	assert.Equal(t, domain.KindDuplicateKey, domain.KindOf(err))
	assert.ErrorIs(t, err, employee.ErrDuplicateEmail)
}

func TestWorkflow_UnknownEmployeeIsNotFound(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)

	_, err := w.employees.GetEmployee(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = w.timesheets.SubmitTimesheet(context.Background(), ports.NewTimesheet{EmployeeID: 999, WorkDate: day(2), Hours: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkflow_NegativeHoursWritesNothing(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)

	_, err := w.timesheets.SubmitTimesheet(context.Background(), ports.NewTimesheet{
		EmployeeID: w.worker.ID, WorkDate: day(2), Hours: -5,
	})
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "hours must be ≥ 0", derr.Message())

	list, err := w.timesheets.ListTimesheets(context.Background(), w.worker.ID, timesheet.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkflow_LedgerFailureRollsBackSubmission(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	ctx := context.Background()

	w.ledger.failing.Store(true)
	_, err := w.timesheets.SubmitTimesheet(ctx, ports.NewTimesheet{EmployeeID: w.worker.ID, WorkDate: day(2), Hours: 8})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	list, err := w.timesheets.ListTimesheets(ctx, w.worker.ID, timesheet.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list, "timesheet must not survive a failed accrual")

	// The same day can be submitted once the ledger recovers.
	w.ledger.failing.Store(false)
	w.submit(t, 2, 8)
	balance, err := w.employees.EmployeeBalance(ctx, w.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(32000), balance)
}

func TestWorkflow_StaleActiveReadCannotSubmitForTerminated(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	ctx := context.Background()

	_, err := w.employees.TerminateEmployee(ctx, w.actor(), w.worker.ID, "")
	require.NoError(t, err)

	repos := app.Repositories{
		Employees:  staleEmployees{EmployeeRepository: repository.NewEmployees(w.db)},
		Timesheets: repository.NewTimesheets(w.db),
		Ledger:     repository.NewLedger(w.db),
	}
	stale := app.NewTimesheetService(w.db, repos, authz.NewStatic([]string{"manager"}), nil,
		app.WithClock(func() time.Time { return now }))

	_, err = stale.SubmitTimesheet(ctx, ports.NewTimesheet{EmployeeID: w.worker.ID, WorkDate: day(2), Hours: 8})
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.KindRuleViolation, derr.Kind())
	assert.Equal(t, "employee_active", derr.Rule())
	assert.Equal(t, "employee_id", derr.Field())

	list, err := w.timesheets.ListTimesheets(ctx, w.worker.ID, timesheet.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	balance, err := w.employees.EmployeeBalance(ctx, w.worker.ID)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestWorkflow_DuplicateDay(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	w.submit(t, 2, 8)

	_, err := w.timesheets.SubmitTimesheet(context.Background(), ports.NewTimesheet{
		EmployeeID: w.worker.ID, WorkDate: day(2).Add(10 * time.Hour), Hours: 1,
	})
	assert.Equal(t, domain.KindDuplicateKey, domain.KindOf(err))
	assert.ErrorIs(t, err, timesheet.ErrDuplicateDay)
}

func TestWorkflow_RejectReversesAccrual(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	ctx := context.Background()
	ts := w.submit(t, 2, 7.5)

	got, err := w.timesheets.RejectTimesheet(ctx, w.actor(), ts.ID, "wrong project")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusRejected, got.Status)

	balance, err := w.employees.EmployeeBalance(ctx, w.worker.ID)
	require.NoError(t, err)
	assert.Zero(t, balance)

	_, err = w.timesheets.RejectTimesheet(ctx, w.actor(), ts.ID, "again")
	assert.ErrorIs(t, err, domain.ErrRuleViolation)
}

func TestWorkflow_TerminateRejectsPendingTimesheets(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	ctx := context.Background()

	approved := w.submit(t, 2, 8)
	pending := w.submit(t, 3, 4)
	_, err := w.timesheets.ApproveTimesheet(ctx, w.actor(), approved.ID)
	require.NoError(t, err)

	result, err := w.employees.TerminateEmployee(ctx, w.actor(), w.worker.ID, "")
	require.NoError(t, err)
	assert.Equal(t, []int64{pending.ID}, result.RejectedTimesheets)
	assert.Equal(t, employee.StatusTerminated, result.Employee.Status)

	rejected, err := w.timesheets.GetTimesheet(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusRejected, rejected.Status)

	balance, err := w.employees.EmployeeBalance(ctx, w.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(32000), balance, "only the approved day stays owed")
}

func TestWorkflow_TerminateRollsBackOnDelegatedFailure(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	ctx := context.Background()
	pending := w.submit(t, 3, 4)

	w.ledger.failing.Store(true)
	_, err := w.employees.TerminateEmployee(ctx, w.actor(), w.worker.ID, "")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	emp, err := w.employees.GetEmployee(ctx, w.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, emp.Status, "status change must roll back with the rejection")

	ts, err := w.timesheets.GetTimesheet(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusSubmitted, ts.Status)
}

func TestWorkflow_TerminateRequiresAuthorization(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)

	_, err := w.employees.TerminateEmployee(context.Background(),
		ports.Actor{EmployeeID: w.manager.ID, Role: "clerk"}, w.worker.ID, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	emp, err := w.employees.GetEmployee(context.Background(), w.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, emp.Status)
}

func TestWorkflow_BulkApprovePartialSuccess(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	ctx := context.Background()

	first := w.submit(t, 1, 8)
	second := w.submit(t, 2, 8)
	already := w.submit(t, 3, 8)
	_, err := w.timesheets.ApproveTimesheet(ctx, w.actor(), already.ID)
	require.NoError(t, err)

	result := w.timesheets.BulkApproveTimesheets(ctx, w.actor(), []int64{first.ID, already.ID, 999, second.ID})

	require.Len(t, result.Approved, 2)
	assert.Equal(t, first.ID, result.Approved[0].ID)
	assert.Equal(t, second.ID, result.Approved[1].ID)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, already.ID, result.Errors[0].TimesheetID)
	assert.ErrorIs(t, result.Errors[0].Err, domain.ErrRuleViolation)
	assert.Equal(t, int64(999), result.Errors[1].TimesheetID)
	assert.ErrorIs(t, result.Errors[1].Err, domain.ErrNotFound)
}

func TestWorkflow_CancelMidTransactionRollsBack(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	before := w.db.Stats().InUse

	// The timesheet row is already written inside the transaction when the
	// caller goes away, just before the ledger write.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.ledger.beforeAppend = cancel

	_, err := w.timesheets.SubmitTimesheet(ctx, ports.NewTimesheet{EmployeeID: w.worker.ID, WorkDate: day(2), Hours: 8})
	require.ErrorIs(t, err, context.Canceled)

	require.Eventually(t, func() bool { return w.db.Stats().InUse == before }, time.Second, 10*time.Millisecond)

	list, err := w.timesheets.ListTimesheets(context.Background(), w.worker.ID, timesheet.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	balance, err := w.employees.EmployeeBalance(context.Background(), w.worker.ID)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestWorkflow_ConcurrentReviewConflict(t *testing.T) {
	t.Parallel()
	w := newWorkflow(t)
	ctx := context.Background()
	ts := w.submit(t, 2, 8)

	// Approve and reject race for the same timesheet; exactly one wins.
	errs := make(chan error, 2)
	go func() {
		_, err := w.timesheets.ApproveTimesheet(ctx, w.actor(), ts.ID)
		errs <- err
	}()
	go func() {
		_, err := w.timesheets.RejectTimesheet(ctx, w.actor(), ts.ID, "race")
		errs <- err
	}()

	var failures []error
	for range 2 {
		if err := <-errs; err != nil {
			failures = append(failures, err)
		}
	}
	require.Len(t, failures, 1)
	kind := domain.KindOf(failures[0])
	if kind != domain.KindConflict && kind != domain.KindRuleViolation {
		t.Errorf("losing review error = %v, want conflict or rule violation", failures[0])
	}
	assert.False(t, errors.Is(failures[0], domain.ErrFatal))
}
