package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/ledger"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const (
	insertLedgerEntry database.Query = `INSERT INTO ledger_entries
		(id, employee_id, timesheet_id, kind, amount_cents, memo, reversal_of, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	selectLedgerByTimesheet database.Query = `SELECT id, employee_id, timesheet_id, kind, amount_cents, memo, reversal_of, created_at
		FROM ledger_entries
		WHERE timesheet_id = ?
		ORDER BY created_at, id`

	selectLedgerBalance database.Query = `SELECT CAST(COALESCE(SUM(amount_cents), 0) AS BIGINT) AS balance
		FROM ledger_entries
		WHERE employee_id = ?`
)

// Ledger is the database-backed ports.LedgerRepository.
type Ledger struct {
	db *database.DB
}

var _ ports.LedgerRepository = (*Ledger)(nil)

func NewLedger(db *database.DB) *Ledger {
	return &Ledger{db: db}
}

// Append inserts entry. Entries are never updated or deleted.
func (r *Ledger) Append(ctx context.Context, scope ports.Scope, entry *ledger.Entry) error {
	q, err := querier(r.db, scope)
	if err != nil {
		return err
	}

	var reversalOf any
	if entry.ReversalOf != uuid.Nil {
		reversalOf = entry.ReversalOf.String()
	}
	_, err = q.Execute(ctx, insertLedgerEntry,
		entry.ID.String(), entry.EmployeeID, entry.TimesheetID, string(entry.Kind),
		entry.AmountCents, entry.Memo, reversalOf, entry.CreatedAt.UTC(),
	)
	return err
}

// ListByTimesheet returns a timesheet's entries oldest first.
func (r *Ledger) ListByTimesheet(ctx context.Context, scope ports.Scope, timesheetID int64) ([]ledger.Entry, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return nil, err
	}
	rows, err := q.FetchAll(ctx, selectLedgerByTimesheet, timesheetID)
	if err != nil {
		return nil, err
	}

	out := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		rr := row.Reader()
		e := ledger.Entry{
			ID:          rr.UUID("id"),
			EmployeeID:  rr.Int64("employee_id"),
			TimesheetID: rr.Int64("timesheet_id"),
			Kind:        ledger.Kind(rr.String("kind")),
			AmountCents: rr.Int64("amount_cents"),
			Memo:        rr.String("memo"),
			ReversalOf:  rr.UUID("reversal_of"),
			CreatedAt:   rr.Time("created_at"),
		}
		if err := rr.Err(); err != nil {
			return nil, err
		}
		if e.Kind != ledger.KindAccrual && e.Kind != ledger.KindReversal {
			return nil, domain.Fatal(fmt.Sprintf("malformed row: ledger entry %s has kind %q", e.ID, e.Kind), nil)
		}
		out = append(out, e)
	}
	return out, nil
}

// Balance sums every entry of an employee. No entries is a zero balance.
func (r *Ledger) Balance(ctx context.Context, scope ports.Scope, employeeID int64) (int64, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return 0, err
	}
	row, ok, err := q.FetchOne(ctx, selectLedgerBalance, employeeID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.Fatal("malformed row: balance query returned no row", nil)
	}
	rr := row.Reader()
	balance := rr.Int64("balance")
	return balance, rr.Err()
}
