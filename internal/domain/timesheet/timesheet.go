// Package timesheet defines the daily Timesheet entity and the rules for
// submitting and reviewing it.
package timesheet

import (
	"errors"
	"time"
)

// ErrDuplicateDay marks a DuplicateKey failure when an employee already has a
// timesheet for the same work date.
var ErrDuplicateDay = errors.New("timesheet already submitted for this day")

// Timesheet records the hours an employee worked on one day.
type Timesheet struct {
	ID         int64
	EmployeeID int64
	WorkDate   time.Time
	Hours      float64
	Note       string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Status represents the review state of a Timesheet.
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Filter holds optional criteria for listing an employee's timesheets.
type Filter struct {
	Status Status
	From   time.Time
	To     time.Time
}
