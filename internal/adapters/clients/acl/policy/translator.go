package policy

import (
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const (
	decisionAllow = "allow"
	decisionDeny  = "deny"

	resourceEmployee = "employee"
)

// ToDecisionRequest converts an authorization question to a downstream
// DecisionRequestDTO. Employee ids travel as strings.
func ToDecisionRequest(actor ports.Actor, action ports.Action, subjectEmployeeID int64) DecisionRequestDTO {
	return DecisionRequestDTO{
		Subject: SubjectDTO{
			ID:   strconv.FormatInt(actor.EmployeeID, 10),
			Role: actor.Role,
		},
		Action: string(action),
		Resource: ResourceDTO{
			Type: resourceEmployee,
			ID:   strconv.FormatInt(subjectEmployeeID, 10),
		},
	}
}

// ToDomainDecision converts a downstream decision to nil (allowed) or a
// domain error. An unknown decision value is Fatal.
func ToDomainDecision(dto DecisionResponseDTO, action ports.Action) error {
	switch dto.Decision {
	case decisionAllow:
		return nil
	case decisionDeny:
		reason := dto.Reason
		if reason == "" {
			reason = fmt.Sprintf("%s denied by policy", action)
		}
		return domain.Unauthorized(reason)
	default:
		return domain.Fatal("malformed authorization response",
			fmt.Errorf("unknown decision %q", dto.Decision))
	}
}
