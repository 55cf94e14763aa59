// Package ledger defines payroll ledger entries derived from timesheets.
// Entries are append-only; a rejected timesheet is reversed, never deleted.
package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
)

// Kind distinguishes accruals from their reversals.
type Kind string

const (
	KindAccrual  Kind = "accrual"
	KindReversal Kind = "reversal"
)

// Entry is a single signed amount owed to an employee.
type Entry struct {
	ID          uuid.UUID
	EmployeeID  int64
	TimesheetID int64
	Kind        Kind
	AmountCents int64
	Memo        string
	ReversalOf  uuid.UUID
	CreatedAt   time.Time
}

// Accrual computes the entry owed for a stored timesheet at the employee's
// current rate. The amount is rounded half away from zero to whole cents.
func Accrual(id uuid.UUID, ts *timesheet.Timesheet, emp *employee.Employee, now time.Time) (Entry, error) {
	if ts.ID <= 0 {
		return Entry{}, domain.NewRuleViolation("timesheet_stored", "timesheet_id", "timesheet must be stored before accrual")
	}
	if ts.EmployeeID != emp.ID {
		return Entry{}, domain.NewRuleViolation("same_employee", "employee_id", "timesheet belongs to another employee")
	}
	amount := math.Round(ts.Hours * float64(emp.HourlyRateCents))
	// float64(math.MaxInt64) rounds up to 2^63, so >= excludes it.
	if math.IsNaN(amount) || amount >= float64(math.MaxInt64) || amount < float64(math.MinInt64) {
		return Entry{}, domain.NewRuleViolation("amount_range", "hours", "accrued amount is out of range")
	}
	return Entry{
		ID:          id,
		EmployeeID:  emp.ID,
		TimesheetID: ts.ID,
		Kind:        KindAccrual,
		AmountCents: int64(amount),
		Memo:        fmt.Sprintf("%.2fh on %s", ts.Hours, ts.WorkDate.Format(time.DateOnly)),
		CreatedAt:   now,
	}, nil
}

// Reversal negates an accrual.
func Reversal(id uuid.UUID, accrual *Entry, reason string, now time.Time) (Entry, error) {
	if accrual.Kind != KindAccrual {
		return Entry{}, domain.NewRuleViolation("reverse_accrual", "kind", "only accruals can be reversed")
	}
	memo := "reversal of " + accrual.ID.String()
	if reason != "" {
		memo += ": " + reason
	}
	return Entry{
		ID:          id,
		EmployeeID:  accrual.EmployeeID,
		TimesheetID: accrual.TimesheetID,
		Kind:        KindReversal,
		AmountCents: -accrual.AmountCents,
		Memo:        memo,
		ReversalOf:  accrual.ID,
		CreatedAt:   now,
	}, nil
}

// OpenAccrual returns the first accrual in entries that no reversal points at.
func OpenAccrual(entries []Entry) (*Entry, bool) {
	reversed := make(map[uuid.UUID]bool, len(entries))
	for i := range entries {
		if entries[i].Kind == KindReversal {
			reversed[entries[i].ReversalOf] = true
		}
	}
	for i := range entries {
		if entries[i].Kind == KindAccrual && !reversed[entries[i].ID] {
			return &entries[i], true
		}
	}
	return nil, false
}
