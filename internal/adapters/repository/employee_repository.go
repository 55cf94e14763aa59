package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const (
	employeeColumns database.Query = `id, name, email, status, hourly_rate_cents, manager_id, created_at, updated_at`

	insertEmployee database.Query = `INSERT INTO employees
		(name, email, status, hourly_rate_cents, manager_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	selectEmployeeByID    = `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	selectEmployeeByEmail = `SELECT ` + employeeColumns + ` FROM employees WHERE email = ?`
	selectEmployees       = `SELECT ` + employeeColumns + ` FROM employees WHERE 1 = 1`

	employeeStatusFilter  database.Query = ` AND status = ?`
	employeeManagerFilter database.Query = ` AND manager_id = ?`
	employeeOrderPage     database.Query = ` ORDER BY id LIMIT ? OFFSET ?`

	updateEmployeeStatus database.Query = `UPDATE employees
		SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`

	// A no-op write: it takes the row lock without changing the row.
	holdActiveEmployee database.Query = `UPDATE employees
		SET status = status
		WHERE id = ? AND status = ?`
)

// Constraint names as reported by postgres and sqlite respectively.
var emailConstraints = []string{"employees_email_key", "employees.email"}

// Employees is the database-backed ports.EmployeeRepository.
type Employees struct {
	db *database.DB
}

var _ ports.EmployeeRepository = (*Employees)(nil)

// NewEmployees creates an employee repository over db.
func NewEmployees(db *database.DB) *Employees {
	return &Employees{db: db}
}

// Create inserts e. A taken email is a DuplicateKey matching
// employee.ErrDuplicateEmail.
func (r *Employees) Create(ctx context.Context, scope ports.Scope, e *employee.Employee) (*employee.Employee, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return nil, err
	}

	row, _, err := q.FetchOne(ctx, insertEmployee,
		e.Name, e.Email, string(e.Status), e.HourlyRateCents, nullable(e.ManagerID),
		e.CreatedAt.UTC(), e.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, retagDuplicate(err, employee.ErrDuplicateEmail,
			"email "+e.Email+" is already registered", emailConstraints...)
	}

	rr := row.Reader()
	created := *e
	created.ID = rr.Int64("id")
	if err := rr.Err(); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns the employee with id, or nil when there is none.
func (r *Employees) GetByID(ctx context.Context, scope ports.Scope, id int64) (*employee.Employee, error) {
	return r.getOne(ctx, scope, selectEmployeeByID, id)
}

// GetByEmail returns the employee registered under email, or nil.
func (r *Employees) GetByEmail(ctx context.Context, scope ports.Scope, email string) (*employee.Employee, error) {
	return r.getOne(ctx, scope, selectEmployeeByEmail, employee.NormalizeEmail(email))
}

func (r *Employees) getOne(ctx context.Context, scope ports.Scope, query database.Query, arg any) (*employee.Employee, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return nil, err
	}
	row, ok, err := q.FetchOne(ctx, query, arg)
	if err != nil || !ok {
		return nil, err
	}
	e, err := scanEmployee(row)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns employees matching filter ordered by id.
func (r *Employees) List(ctx context.Context, scope ports.Scope, filter employee.Filter) ([]employee.Employee, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return nil, err
	}

	query := selectEmployees
	var args []any
	if filter.Status != "" {
		query += employeeStatusFilter
		args = append(args, string(filter.Status))
	}
	if filter.ManagerID != nil {
		query += employeeManagerFilter
		args = append(args, *filter.ManagerID)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = math.MaxInt32
	}
	query += employeeOrderPage
	args = append(args, limit, filter.Offset)

	rows, err := q.FetchAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := scanEmployee(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// UpdateStatus moves employee id from one status to another and reports
// whether the stored status was still from.
func (r *Employees) UpdateStatus(ctx context.Context, scope ports.Scope, id int64, from, to employee.Status, now time.Time) (bool, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return false, err
	}
	n, err := q.Execute(ctx, updateEmployeeStatus, string(to), now.UTC(), id, string(from))
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// HoldActive takes the row lock on an active employee inside scope.
func (r *Employees) HoldActive(ctx context.Context, scope ports.Scope, id int64) (bool, error) {
	q, err := querier(r.db, scope)
	if err != nil {
		return false, err
	}
	n, err := q.Execute(ctx, holdActiveEmployee, id, string(employee.StatusActive))
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func scanEmployee(row database.Row) (employee.Employee, error) {
	rr := row.Reader()
	e := employee.Employee{
		ID:              rr.Int64("id"),
		Name:            rr.String("name"),
		Email:           rr.String("email"),
		Status:          employee.Status(rr.String("status")),
		HourlyRateCents: rr.Int64("hourly_rate_cents"),
		ManagerID:       rr.NullInt64("manager_id"),
		CreatedAt:       rr.Time("created_at"),
		UpdatedAt:       rr.Time("updated_at"),
	}
	if err := rr.Err(); err != nil {
		return employee.Employee{}, err
	}
	if !e.Status.IsValid() {
		return employee.Employee{}, domain.Fatal(fmt.Sprintf("malformed row: employee %d has status %q", e.ID, e.Status), nil)
	}
	return e, nil
}
