// Package employee defines the Employee entity and the business rules that
// govern its lifecycle.
package employee

import (
	"errors"
	"time"
)

// ErrDuplicateEmail marks a DuplicateKey failure on the employee email.
var ErrDuplicateEmail = errors.New("email already registered")

// Employee is a person on the payroll.
type Employee struct {
	ID              int64
	Name            string
	Email           string
	Status          Status
	HourlyRateCents int64
	ManagerID       *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Status represents where an employee is in their lifecycle.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Filter holds optional criteria for listing employees.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status    Status
	ManagerID *int64
	Limit     int
	Offset    int
}
