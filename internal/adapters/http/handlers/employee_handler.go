package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// EmployeeHandler handles HTTP requests for employee use cases.
type EmployeeHandler struct {
	svc ports.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler with the given service port.
func NewEmployeeHandler(svc ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// ListEmployees handles GET /api/v1/employees.
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEmployeeFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	employees, err := h.svc.ListEmployees(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEmployeeListResponse(employees))
}

// CreateEmployee handles POST /api/v1/employees.
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateEmployee(r.Context(), ports.NewEmployee{
		Name:            req.Name,
		Email:           req.Email,
		HourlyRateCents: req.HourlyRateCents,
		ManagerID:       req.ManagerID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToEmployeeResponse(created))
}

// GetEmployee handles GET /api/v1/employees/{id}.
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEmployeeResponse(e))
}

// ChangeStatus handles PUT /api/v1/employees/{id}/status.
func (h *EmployeeHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChangeStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.svc.ChangeEmployeeStatus(r.Context(), id, employee.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEmployeeResponse(e))
}

// TerminateEmployee handles POST /api/v1/employees/{id}/terminate.
func (h *EmployeeHandler) TerminateEmployee(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.svc.TerminateEmployee(r.Context(), actor, id, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTerminationResponse(result))
}

// GetBalance handles GET /api/v1/employees/{id}/balance.
func (h *EmployeeHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	balance, err := h.svc.EmployeeBalance(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.BalanceResponse{EmployeeID: id, BalanceCents: balance})
}
