// Package policy implements the Anti-Corruption Layer translators for the
// downstream authorization policy service's decision resource.
package policy

// DecisionRequestDTO matches the downstream DecisionRequest schema.
type DecisionRequestDTO struct {
	Subject  SubjectDTO  `json:"subject"`
	Action   string      `json:"action"`
	Resource ResourceDTO `json:"resource"`
}

// SubjectDTO identifies who is asking.
type SubjectDTO struct {
	ID   string `json:"id"`
	Role string `json:"role,omitempty"`
}

// ResourceDTO identifies what is being acted on.
type ResourceDTO struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// DecisionResponseDTO matches the downstream DecisionResponse schema.
type DecisionResponseDTO struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}
