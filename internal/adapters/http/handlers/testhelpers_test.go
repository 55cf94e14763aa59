package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

var (
	testTime     = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testWorkDate = time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	testManager  = ports.Actor{EmployeeID: 7, Role: "manager"}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withActor(r *http.Request, actor ports.Actor) *http.Request {
	return r.WithContext(middleware.WithActor(r.Context(), actor))
}

func validEmployee() employee.Employee {
	manager := int64(7)
	return employee.Employee{
		ID:              1,
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Status:          employee.StatusActive,
		HourlyRateCents: 5000,
		ManagerID:       &manager,
		CreatedAt:       testTime,
		UpdatedAt:       testTime,
	}
}

func validTimesheet() timesheet.Timesheet {
	return timesheet.Timesheet{
		ID:         10,
		EmployeeID: 1,
		WorkDate:   testWorkDate,
		Hours:      8,
		Note:       "release prep",
		Status:     timesheet.StatusSubmitted,
		CreatedAt:  testTime,
		UpdatedAt:  testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
