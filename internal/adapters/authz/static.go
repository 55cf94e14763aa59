// Package authz holds the in-process ports.Authorizer.
package authz

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// Static allows an action when the actor's role is one of a fixed set.
// Nobody may act on their own employee record.
type Static struct {
	roles map[string]struct{}
}

var _ ports.Authorizer = (*Static)(nil)

// NewStatic creates an authorizer granting every action to roles. Role
// comparison ignores case.
func NewStatic(roles []string) *Static {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		set[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return &Static{roles: set}
}

func (s *Static) Authorize(_ context.Context, actor ports.Actor, action ports.Action, subjectEmployeeID int64) error {
	if actor.EmployeeID == subjectEmployeeID {
		return domain.Unauthorized(fmt.Sprintf("%s on own record is not allowed", action))
	}
	if _, ok := s.roles[strings.ToLower(actor.Role)]; !ok {
		return domain.Unauthorized(fmt.Sprintf("role %q may not %s", actor.Role, action))
	}
	return nil
}
