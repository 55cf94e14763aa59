package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// TimesheetHandler handles HTTP requests for timesheet use cases.
type TimesheetHandler struct {
	svc ports.TimesheetService
}

// NewTimesheetHandler creates a new TimesheetHandler with the given service port.
func NewTimesheetHandler(svc ports.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{svc: svc}
}

// SubmitTimesheet handles POST /api/v1/timesheets.
func (h *TimesheetHandler) SubmitTimesheet(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitTimesheetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ts, err := h.svc.SubmitTimesheet(r.Context(), ports.NewTimesheet{
		EmployeeID: req.EmployeeID,
		WorkDate:   req.Date(),
		Hours:      *req.Hours,
		Note:       req.Note,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTimesheetResponse(ts))
}

// GetTimesheet handles GET /api/v1/timesheets/{id}.
func (h *TimesheetHandler) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ts, err := h.svc.GetTimesheet(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTimesheetResponse(ts))
}

// ListEmployeeTimesheets handles GET /api/v1/employees/{id}/timesheets.
func (h *TimesheetHandler) ListEmployeeTimesheets(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter, err := parseTimesheetFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.svc.ListTimesheets(r.Context(), id, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTimesheetListResponse(list))
}

// ApproveTimesheet handles POST /api/v1/timesheets/{id}/approve.
func (h *TimesheetHandler) ApproveTimesheet(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ts, err := h.svc.ApproveTimesheet(r.Context(), actor, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTimesheetResponse(ts))
}

// RejectTimesheet handles POST /api/v1/timesheets/{id}/reject.
func (h *TimesheetHandler) RejectTimesheet(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ReasonRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	ts, err := h.svc.RejectTimesheet(r.Context(), actor, id, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTimesheetResponse(ts))
}

// BulkApprove handles POST /api/v1/timesheets/bulk-approve. The response is
// 200 even when some items fail; per-item outcomes are in the body.
func (h *TimesheetHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req dto.BulkApproveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.svc.BulkApproveTimesheets(r.Context(), actor, req.IDs)
	writeJSON(w, r, http.StatusOK, dto.ToBulkApproveResponse(result))
}
