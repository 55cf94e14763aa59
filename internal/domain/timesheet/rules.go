package timesheet

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
)

const (
	maxHoursPerDay = 24
	maxNoteLength  = 1000
)

// WorkDay truncates t to midnight UTC of its calendar day.
func WorkDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New builds a submitted timesheet for persistence.
func New(employeeID int64, workDate time.Time, hours float64, note string, now time.Time) Timesheet {
	return Timesheet{
		EmployeeID: employeeID,
		WorkDate:   WorkDay(workDate),
		Hours:      hours,
		Note:       strings.TrimSpace(note),
		Status:     StatusSubmitted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ValidateEntry checks the rules that depend only on the timesheet itself.
// now is the caller's clock reading.
func ValidateEntry(ts *Timesheet, now time.Time) error {
	switch {
	case math.IsNaN(ts.Hours) || ts.Hours < 0:
		return domain.NewRuleViolation("hours_non_negative", "hours", "hours must be ≥ 0")
	case ts.Hours > maxHoursPerDay:
		return domain.NewRuleViolation("hours_per_day", "hours",
			fmt.Sprintf("hours must be ≤ %d", maxHoursPerDay))
	case ts.WorkDate.IsZero():
		return domain.NewRuleViolation("work_date_required", "work_date", "work date is required")
	case ts.WorkDate.After(WorkDay(now)):
		return domain.NewRuleViolation("work_date_not_future", "work_date", "work date must not be in the future")
	case len(ts.Note) > maxNoteLength:
		return domain.NewRuleViolation("note_length", "note",
			fmt.Sprintf("note must be at most %d characters", maxNoteLength))
	}
	return nil
}

// ValidateSubmission checks a new timesheet against the employee it belongs
// to, after the ValidateEntry rules.
func ValidateSubmission(ts *Timesheet, emp *employee.Employee, now time.Time) error {
	if err := ValidateEntry(ts, now); err != nil {
		return err
	}
	if emp.Status != employee.StatusActive {
		return domain.NewRuleViolation("employee_active", "employee_id",
			fmt.Sprintf("employee is %s", emp.Status))
	}
	return nil
}

// ValidateFilter checks list criteria.
func ValidateFilter(f Filter) error {
	if f.Status != "" && !f.Status.IsValid() {
		return domain.NewRuleViolation("status_known", "status", fmt.Sprintf("unknown status %q", f.Status))
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return domain.NewRuleViolation("date_range", "from", "from must not be after to")
	}
	return nil
}

// ValidateTransition checks a review decision. Only submitted timesheets can
// be approved or rejected.
func ValidateTransition(from, to Status) error {
	if to != StatusApproved && to != StatusRejected {
		return domain.NewRuleViolation("review_target", "status", fmt.Sprintf("cannot move a timesheet to %q", to))
	}
	if from != StatusSubmitted {
		return domain.NewRuleViolation("review_once", "status", fmt.Sprintf("timesheet is already %s", from))
	}
	return nil
}

// ValidateApprover checks that an approver is not approving their own hours.
func ValidateApprover(ts *Timesheet, approverID int64) error {
	if approverID == ts.EmployeeID {
		return domain.NewRuleViolation("no_self_approval", "approver_id", "employees cannot approve their own timesheets")
	}
	return nil
}
