package dto

import (
	"time"
)

const (
	msgRequired     = "is required"
	msgMustPositive = "must be a positive integer"

	// MaxBulkApprove bounds the ids accepted by one bulk approval request. It
	// matches the max tag on BulkApproveRequest.IDs.
	MaxBulkApprove = 100
)

// CreateEmployeeRequest is the body of POST /employees. Email format, rate
// sign and manager existence are business rules checked by the use case.
type CreateEmployeeRequest struct {
	Name            string `json:"name" validate:"notblank"`
	Email           string `json:"email" validate:"notblank"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	ManagerID       *int64 `json:"manager_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error { return checkShape(r) }

// ChangeStatusRequest is the body of PUT /employees/{id}/status.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"notblank"`
}

func (r *ChangeStatusRequest) Validate() error { return checkShape(r) }

// ReasonRequest is the optional body of terminate and reject. The reason
// ends up in the ledger memo.
type ReasonRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (r *ReasonRequest) Validate() error { return checkShape(r) }

// SubmitTimesheetRequest is the body of POST /timesheets. Hour bounds are a
// business rule; a missing hours value is a shape error.
type SubmitTimesheetRequest struct {
	EmployeeID int64    `json:"employee_id" validate:"gt=0"`
	WorkDate   string   `json:"work_date" validate:"notblank,isodate"`
	Hours      *float64 `json:"hours" validate:"required"`
	Note       string   `json:"note,omitempty"`
}

func (r *SubmitTimesheetRequest) Validate() error { return checkShape(r) }

// Date returns the parsed work date. Call only after Validate succeeds.
func (r *SubmitTimesheetRequest) Date() time.Time {
	d, _ := time.Parse(time.DateOnly, r.WorkDate)
	return d
}

// BulkApproveRequest is the body of POST /timesheets/bulk-approve.
type BulkApproveRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,max=100,dive,gt=0"`
}

func (r *BulkApproveRequest) Validate() error { return checkShape(r) }
