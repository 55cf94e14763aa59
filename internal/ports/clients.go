package ports

import (
	"context"
	"fmt"
)

// Action names an operation that requires authorization.
type Action string

const (
	ActionApproveTimesheet Action = "timesheet.approve"
	ActionRejectTimesheet  Action = "timesheet.reject"
	ActionTerminate        Action = "employee.terminate"
)

// Actor identifies who is performing a use case. Identity is established
// upstream; this service only reads it.
type Actor struct {
	EmployeeID int64
	Role       string
}

func (a Actor) String() string {
	return fmt.Sprintf("%d/%s", a.EmployeeID, a.Role)
}

// Authorizer decides whether an actor may perform an action on behalf of an
// employee. Implemented by outbound adapters; called by the application layer
// in the middle of a workflow.
type Authorizer interface {
	// Authorize returns nil when allowed and a domain Unauthorized error
	// when denied. Other kinds report that no decision could be made.
	Authorize(ctx context.Context, actor Actor, action Action, subjectEmployeeID int64) error
}
