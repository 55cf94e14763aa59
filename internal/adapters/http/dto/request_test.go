package dto_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
)

func float64Ptr(f float64) *float64 { return &f }

// requireValidationField asserts err wraps ErrRuleViolation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrRuleViolation) {
		t.Errorf("errors.Is(err, ErrRuleViolation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateEmployeeRequest
		wantField string
	}{
		{name: "valid request passes", req: dto.CreateEmployeeRequest{Name: "Ada", Email: "ada@example.com"}},
		{name: "rule checks are left to the use case", req: dto.CreateEmployeeRequest{Name: "Ada", Email: "nope", HourlyRateCents: -1}},
		{name: "empty name fails", req: dto.CreateEmployeeRequest{Email: "ada@example.com"}, wantField: "name"},
		{name: "whitespace name fails", req: dto.CreateEmployeeRequest{Name: "  ", Email: "ada@example.com"}, wantField: "name"},
		{name: "empty email fails", req: dto.CreateEmployeeRequest{Name: "Ada"}, wantField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestChangeStatusRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.ChangeStatusRequest{Status: "inactive"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.ChangeStatusRequest{}).Validate(), "status")
}

func TestReasonRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.ReasonRequest{}).Validate(); err != nil {
		t.Errorf("empty reason Validate() = %v, want nil", err)
	}
	long := &dto.ReasonRequest{Reason: strings.Repeat("x", 501)}
	requireValidationField(t, long.Validate(), "reason")
}

func TestSubmitTimesheetRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.SubmitTimesheetRequest
		wantField string
	}{
		{
			name: "valid request passes",
			req:  dto.SubmitTimesheetRequest{EmployeeID: 1, WorkDate: "2026-03-02", Hours: float64Ptr(8)},
		},
		{
			name: "negative hours are a business rule, not a shape error",
			req:  dto.SubmitTimesheetRequest{EmployeeID: 1, WorkDate: "2026-03-02", Hours: float64Ptr(-5)},
		},
		{
			name:      "missing employee",
			req:       dto.SubmitTimesheetRequest{WorkDate: "2026-03-02", Hours: float64Ptr(8)},
			wantField: "employee_id",
		},
		{
			name:      "missing date",
			req:       dto.SubmitTimesheetRequest{EmployeeID: 1, Hours: float64Ptr(8)},
			wantField: "work_date",
		},
		{
			name:      "malformed date",
			req:       dto.SubmitTimesheetRequest{EmployeeID: 1, WorkDate: "03/02/2026", Hours: float64Ptr(8)},
			wantField: "work_date",
		},
		{
			name:      "missing hours",
			req:       dto.SubmitTimesheetRequest{EmployeeID: 1, WorkDate: "2026-03-02"},
			wantField: "hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestSubmitTimesheetRequest_Date(t *testing.T) {
	t.Parallel()

	req := dto.SubmitTimesheetRequest{WorkDate: "2026-03-02"}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := req.Date(); !got.Equal(want) {
		t.Errorf("Date() = %v, want %v", got, want)
	}
}

func TestBulkApproveRequest_Validate(t *testing.T) {
	t.Parallel()

	tooMany := make([]int64, dto.MaxBulkApprove+1)
	for i := range tooMany {
		tooMany[i] = int64(i + 1)
	}

	tests := []struct {
		name      string
		ids       []int64
		wantField string
	}{
		{name: "valid", ids: []int64{1, 2, 3}},
		{name: "empty", ids: nil, wantField: "ids"},
		{name: "too many", ids: tooMany, wantField: "ids"},
		{name: "non-positive id", ids: []int64{1, 0}, wantField: "ids[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := (&dto.BulkApproveRequest{IDs: tt.ids}).Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   interface{ Validate() error }
		field string
		want  string
	}{
		{"blank name", &dto.CreateEmployeeRequest{Name: " ", Email: "a@b.c"}, "name", "is required"},
		{"bad date", &dto.SubmitTimesheetRequest{EmployeeID: 1, WorkDate: "2026-13-01", Hours: float64Ptr(1)}, "work_date", "must be a date in YYYY-MM-DD form"},
		{"zero employee", &dto.SubmitTimesheetRequest{WorkDate: "2026-03-02", Hours: float64Ptr(1)}, "employee_id", "must be a positive integer"},
		{"long reason", &dto.ReasonRequest{Reason: strings.Repeat("x", 501)}, "reason", "must be at most 500 characters"},
		{"empty ids", &dto.BulkApproveRequest{IDs: []int64{}}, "ids", "must contain at least 1 item"},
		{"negative id", &dto.BulkApproveRequest{IDs: []int64{3, -1}}, "ids[1]", "must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var verr *domain.ValidationError
			if !errors.As(tt.req.Validate(), &verr) {
				t.Fatalf("Validate() did not return a *ValidationError")
			}
			if got := verr.Fields[tt.field]; got != tt.want {
				t.Errorf("Fields[%q] = %q, want %q (all: %v)", tt.field, got, tt.want, verr.Fields)
			}
		})
	}
}
