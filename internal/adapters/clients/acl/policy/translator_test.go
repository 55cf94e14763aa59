package policy

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

func TestToDecisionRequest(t *testing.T) {
	t.Parallel()

	got := ToDecisionRequest(ports.Actor{EmployeeID: 7, Role: "manager"}, ports.ActionApproveTimesheet, 42)

	want := DecisionRequestDTO{
		Subject:  SubjectDTO{ID: "7", Role: "manager"},
		Action:   "timesheet.approve",
		Resource: ResourceDTO{Type: "employee", ID: "42"},
	}
	if got != want {
		t.Errorf("ToDecisionRequest() = %+v, want %+v", got, want)
	}
}

func TestToDomainDecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		dto         DecisionResponseDTO
		wantKind    domain.Kind
		wantMessage string
	}{
		{name: "allow", dto: DecisionResponseDTO{Decision: "allow"}},
		{
			name:        "deny with reason",
			dto:         DecisionResponseDTO{Decision: "deny", Reason: "not in reporting line"},
			wantKind:    domain.KindUnauthorized,
			wantMessage: "not in reporting line",
		},
		{
			name:        "deny without reason",
			dto:         DecisionResponseDTO{Decision: "deny"},
			wantKind:    domain.KindUnauthorized,
			wantMessage: "timesheet.approve denied by policy",
		},
		{name: "unknown decision", dto: DecisionResponseDTO{Decision: "maybe"}, wantKind: domain.KindFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ToDomainDecision(tt.dto, ports.ActionApproveTimesheet)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("ToDomainDecision() = %v, want nil", err)
				}
				return
			}

			var derr *domain.Error
			if !errors.As(err, &derr) {
				t.Fatalf("ToDomainDecision() = %v, want *domain.Error", err)
			}
			if derr.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", derr.Kind(), tt.wantKind)
			}
			if tt.wantMessage != "" && derr.Message() != tt.wantMessage {
				t.Errorf("Message() = %q, want %q", derr.Message(), tt.wantMessage)
			}
		})
	}
}
