// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// EmployeeResponse represents a single employee in HTTP responses.
type EmployeeResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	ManagerID       *int64 `json:"manager_id,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// EmployeeListResponse represents a page of employees in HTTP responses.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Count     int                `json:"count"`
}

// ToEmployeeResponse converts a domain Employee entity to an HTTP response DTO.
func ToEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		Status:          e.Status.String(),
		HourlyRateCents: e.HourlyRateCents,
		ManagerID:       e.ManagerID,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       e.UpdatedAt.Format(time.RFC3339),
	}
}

// ToEmployeeListResponse converts a slice of domain Employee entities to an
// HTTP list response DTO.
func ToEmployeeListResponse(employees []employee.Employee) EmployeeListResponse {
	items := make([]EmployeeResponse, len(employees))
	for i := range employees {
		items[i] = ToEmployeeResponse(&employees[i])
	}
	return EmployeeListResponse{
		Employees: items,
		Count:     len(items),
	}
}

// TimesheetResponse represents a single timesheet in HTTP responses.
type TimesheetResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	Hours      float64 `json:"hours"`
	Note       string  `json:"note,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// TimesheetListResponse represents a list of timesheets in HTTP responses.
type TimesheetListResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
	Count      int                 `json:"count"`
}

// ToTimesheetResponse converts a domain Timesheet entity to an HTTP response DTO.
func ToTimesheetResponse(ts *timesheet.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:         ts.ID,
		EmployeeID: ts.EmployeeID,
		WorkDate:   ts.WorkDate.Format(time.DateOnly),
		Hours:      ts.Hours,
		Note:       ts.Note,
		Status:     ts.Status.String(),
		CreatedAt:  ts.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  ts.UpdatedAt.Format(time.RFC3339),
	}
}

// ToTimesheetListResponse converts a slice of domain Timesheet entities to
// an HTTP list response DTO.
func ToTimesheetListResponse(timesheets []timesheet.Timesheet) TimesheetListResponse {
	items := make([]TimesheetResponse, len(timesheets))
	for i := range timesheets {
		items[i] = ToTimesheetResponse(&timesheets[i])
	}
	return TimesheetListResponse{
		Timesheets: items,
		Count:      len(items),
	}
}

// TerminationResponse reports a terminated employee and the timesheets that
// were rejected with it.
type TerminationResponse struct {
	Employee           EmployeeResponse `json:"employee"`
	RejectedTimesheets []int64          `json:"rejected_timesheets"`
}

// ToTerminationResponse converts a ports.TerminationResult to an HTTP
// response DTO.
func ToTerminationResponse(result *ports.TerminationResult) TerminationResponse {
	rejected := result.RejectedTimesheets
	if rejected == nil {
		rejected = []int64{}
	}
	return TerminationResponse{
		Employee:           ToEmployeeResponse(result.Employee),
		RejectedTimesheets: rejected,
	}
}

// BalanceResponse reports what the payroll ledger owes an employee.
type BalanceResponse struct {
	EmployeeID   int64 `json:"employee_id"`
	BalanceCents int64 `json:"balance_cents"`
}

// BulkApproveResponse represents the result of a bulk approval. It includes
// both successful approvals and per-item errors.
type BulkApproveResponse struct {
	Approved  []TimesheetResponse `json:"approved"`
	Errors    []BulkErrorItem     `json:"errors"`
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// BulkErrorItem represents a single failed approval within a bulk operation.
type BulkErrorItem struct {
	TimesheetID int64  `json:"timesheet_id"`
	Status      int    `json:"status"`
	Kind        string `json:"kind,omitempty"`
	Message     string `json:"message"`
}

// ToBulkApproveResponse converts a ports.BulkApproveResult to an HTTP
// response DTO. Item errors go through the same mapping as whole-request
// errors.
func ToBulkApproveResponse(result *ports.BulkApproveResult) BulkApproveResponse {
	approved := make([]TimesheetResponse, len(result.Approved))
	for i := range result.Approved {
		approved[i] = ToTimesheetResponse(&result.Approved[i])
	}

	errs := make([]BulkErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		status := errorToStatus(e.Err)
		kind, detail := describe(e.Err, http.StatusText(status))
		errs[i] = BulkErrorItem{
			TimesheetID: e.TimesheetID,
			Status:      status,
			Kind:        kind,
			Message:     detail,
		}
	}

	return BulkApproveResponse{
		Approved:  approved,
		Errors:    errs,
		Total:     len(approved) + len(errs),
		Succeeded: len(approved),
		Failed:    len(errs),
	}
}

// HealthResponse is the body of both health endpoints. Checks is omitted for
// liveness.
type HealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is one dependency's readiness.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
