package employee

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
)

const (
	maxNameLength = 200

	// DefaultPageSize applies when a Filter has no Limit.
	DefaultPageSize = 50
	MaxPageSize     = 500

	// MaxHourlyRateCents caps the rate so a day's accrual stays far inside
	// int64 cents.
	MaxHourlyRateCents = 100_000_000
)

// NormalizeEmail lower-cases and trims an address so uniqueness is
// case-insensitive.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// New builds an active employee ready for persistence. The input is
// normalized but not validated; call ValidateNew on the result.
func New(name, email string, hourlyRateCents int64, managerID *int64, now time.Time) Employee {
	return Employee{
		Name:            strings.TrimSpace(name),
		Email:           NormalizeEmail(email),
		Status:          StatusActive,
		HourlyRateCents: hourlyRateCents,
		ManagerID:       managerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ValidateNew checks the rules for an employee that has not been stored yet.
// The first failing rule is returned as a RuleViolation.
func ValidateNew(e *Employee) error {
	switch {
	case e.Name == "":
		return domain.NewRuleViolation("name_required", "name", "name is required")
	case len(e.Name) > maxNameLength:
		return domain.NewRuleViolation("name_length", "name",
			fmt.Sprintf("name must be at most %d characters", maxNameLength))
	case !validEmail(e.Email):
		return domain.NewRuleViolation("email_format", "email", "email must be a valid address")
	case e.HourlyRateCents < 0:
		return domain.NewRuleViolation("rate_non_negative", "hourly_rate_cents", "hourly rate must be ≥ 0")
	case e.HourlyRateCents > MaxHourlyRateCents:
		return domain.NewRuleViolation("rate_max", "hourly_rate_cents",
			fmt.Sprintf("hourly rate must be ≤ %d cents", MaxHourlyRateCents))
	case e.ManagerID != nil && *e.ManagerID <= 0:
		return domain.NewRuleViolation("manager_id_positive", "manager_id", "manager id must be positive")
	case !e.Status.IsValid():
		return domain.NewRuleViolation("status_known", "status", fmt.Sprintf("unknown status %q", e.Status))
	}
	return nil
}

// ValidateStatusChange checks that an employee may move from one status to
// another. Termination is final.
func ValidateStatusChange(from, to Status) error {
	if !to.IsValid() {
		return domain.NewRuleViolation("status_known", "status", fmt.Sprintf("unknown status %q", to))
	}
	if from == to {
		return domain.NewRuleViolation("status_changes", "status", fmt.Sprintf("employee is already %s", to))
	}
	if from == StatusTerminated {
		return domain.NewRuleViolation("termination_final", "status", "terminated employees cannot be reinstated")
	}
	return nil
}

// ValidateFilter checks list criteria.
func ValidateFilter(f Filter) error {
	switch {
	case f.Status != "" && !f.Status.IsValid():
		return domain.NewRuleViolation("status_known", "status", fmt.Sprintf("unknown status %q", f.Status))
	case f.Limit < 0 || f.Limit > MaxPageSize:
		return domain.NewRuleViolation("page_size", "limit", fmt.Sprintf("limit must be between 0 and %d", MaxPageSize))
	case f.Offset < 0:
		return domain.NewRuleViolation("page_offset", "offset", "offset must be ≥ 0")
	}
	return nil
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms such as "Ann <ann@example.com>".
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}
