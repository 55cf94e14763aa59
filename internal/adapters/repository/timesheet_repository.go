package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const (
	timesheetColumns database.Query = `id, employee_id, work_date, hours, note, status, created_at, updated_at`

	insertTimesheet database.Query = `INSERT INTO timesheets
		(employee_id, work_date, hours, note, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	selectTimesheetByID         = `SELECT ` + timesheetColumns + ` FROM timesheets WHERE id = ?`
	selectTimesheetsForEmployee = `SELECT ` + timesheetColumns + ` FROM timesheets WHERE employee_id = ?`

	timesheetStatusFilter database.Query = ` AND status = ?`
	timesheetFromFilter   database.Query = ` AND work_date >= ?`
	timesheetToFilter     database.Query = ` AND work_date <= ?`
	timesheetOrder        database.Query = ` ORDER BY work_date, id`

	updateTimesheetStatus database.Query = `UPDATE timesheets
		SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`
)

var workDayConstraints = []string{
	"timesheets_employee_date_key",
	"timesheets.employee_id, timesheets.work_date",
}

// Timesheets is the database-backed ports.TimesheetRepository.
type Timesheets struct {
	db *database.DB
}

var _ ports.TimesheetRepository = (*Timesheets)(nil)

func NewTimesheets(db *database.DB) *Timesheets {
	return &Timesheets{db: db}
}

// Create inserts ts. A second timesheet for the same employee and day is a
// DuplicateKey matching timesheet.ErrDuplicateDay.
func (r *Timesheets) Create(ctx context.Context, scope ports.Scope, ts *timesheet.Timesheet) (*timesheet.Timesheet, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return nil, err
	}

	workDate := timesheet.WorkDay(ts.WorkDate)
	row, _, err := q.FetchOne(ctx, insertTimesheet,
		ts.EmployeeID, workDate, ts.Hours, ts.Note, string(ts.Status),
		ts.CreatedAt.UTC(), ts.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, retagDuplicate(err, timesheet.ErrDuplicateDay,
			fmt.Sprintf("employee %d already has a timesheet for %s", ts.EmployeeID, workDate.Format(time.DateOnly)),
			workDayConstraints...)
	}

	rr := row.Reader()
	created := *ts
	created.ID = rr.Int64("id")
	created.WorkDate = workDate
	if err := rr.Err(); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns the timesheet with id, or nil when there is none.
func (r *Timesheets) GetByID(ctx context.Context, scope ports.Scope, id int64) (*timesheet.Timesheet, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return nil, err
	}
	row, ok, err := q.FetchOne(ctx, selectTimesheetByID, id)
	if err != nil || !ok {
		return nil, err
	}
	ts, err := scanTimesheet(row)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// ListByEmployee returns an employee's timesheets matching filter ordered by
// work date.
func (r *Timesheets) ListByEmployee(ctx context.Context, scope ports.Scope, employeeID int64, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return nil, err
	}

	query := selectTimesheetsForEmployee
	args := []any{employeeID}
	if filter.Status != "" {
		query += timesheetStatusFilter
		args = append(args, string(filter.Status))
	}
	if !filter.From.IsZero() {
		query += timesheetFromFilter
		args = append(args, timesheet.WorkDay(filter.From))
	}
	if !filter.To.IsZero() {
		query += timesheetToFilter
		args = append(args, timesheet.WorkDay(filter.To))
	}
	query += timesheetOrder

	rows, err := q.FetchAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]timesheet.Timesheet, 0, len(rows))
	for _, row := range rows {
		ts, err := scanTimesheet(row)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

// UpdateStatus moves timesheet id from one status to another and reports
// whether the stored status was still from.
func (r *Timesheets) UpdateStatus(ctx context.Context, scope ports.Scope, id int64, from, to timesheet.Status, now time.Time) (bool, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return false, err
	}
	n, err := q.Execute(ctx, updateTimesheetStatus, string(to), now.UTC(), id, string(from))
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func scanTimesheet(row database.Row) (timesheet.Timesheet, error) {
	rr := row.Reader()
	ts := timesheet.Timesheet{
		ID:         rr.Int64("id"),
		EmployeeID: rr.Int64("employee_id"),
		WorkDate:   rr.Date("work_date"),
		Hours:      rr.Float64("hours"),
		Note:       rr.String("note"),
		Status:     timesheet.Status(rr.String("status")),
		CreatedAt:  rr.Time("created_at"),
		UpdatedAt:  rr.Time("updated_at"),
	}
	if err := rr.Err(); err != nil {
		return timesheet.Timesheet{}, err
	}
	if !ts.Status.IsValid() {
		return timesheet.Timesheet{}, domain.Fatal(fmt.Sprintf("malformed row: timesheet %d has status %q", ts.ID, ts.Status), nil)
	}
	return ts, nil
}
