package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failure. The set of kinds is closed: anything that is not
// a *Error is treated as KindFatal.
type Kind string

const (
	KindRuleViolation         Kind = "rule_violation"
	KindNotFound              Kind = "not_found"
	KindDuplicateKey          Kind = "duplicate_key"
	KindConstraintViolation   Kind = "constraint_violation"
	KindConflict              Kind = "conflict"
	KindStorageUnavailable    Kind = "storage_unavailable"
	KindResourceExhausted     Kind = "resource_exhausted"
	KindUnauthorized          Kind = "unauthorized"
	KindDependencyUnavailable Kind = "dependency_unavailable"
	KindFatal                 Kind = "fatal"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrRuleViolation         = errors.New("rule violation")
	ErrNotFound              = errors.New("not found")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrConflict              = errors.New("conflict")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrResourceExhausted     = errors.New("resource exhausted")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrFatal                 = errors.New("fatal")
)

var kindSentinels = map[Kind]error{
	KindRuleViolation:         ErrRuleViolation,
	KindNotFound:              ErrNotFound,
	KindDuplicateKey:          ErrDuplicateKey,
	KindConstraintViolation:   ErrConstraintViolation,
	KindConflict:              ErrConflict,
	KindStorageUnavailable:    ErrStorageUnavailable,
	KindResourceExhausted:     ErrResourceExhausted,
	KindUnauthorized:          ErrUnauthorized,
	KindDependencyUnavailable: ErrDependencyUnavailable,
	KindFatal:                 ErrFatal,
}

// Error is the kind-tagged failure shared by every layer. Values are
// immutable once constructed; use the accessors to read them.
type Error struct {
	kind       Kind
	message    string
	field      string
	rule       string
	constraint string
	code       error
	cause      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.kind))
	if e.message != "" {
		b.WriteString(": ")
		b.WriteString(e.message)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is matches the kind sentinel and the optional domain code. A duplicate key
// is also a constraint violation.
func (e *Error) Is(target error) bool {
	if target == kindSentinels[e.kind] {
		return true
	}
	if e.kind == KindDuplicateKey && target == ErrConstraintViolation {
		return true
	}
	return e.code != nil && target == e.code
}

func (e *Error) Kind() Kind         { return e.kind }
func (e *Error) Message() string    { return e.message }
func (e *Error) Field() string      { return e.field }
func (e *Error) Rule() string       { return e.rule }
func (e *Error) Constraint() string { return e.constraint }
func (e *Error) Code() error        { return e.code }

// NewRuleViolation reports a failed business rule on a single field.
func NewRuleViolation(rule, field, message string) *Error {
	return &Error{kind: KindRuleViolation, rule: rule, field: field, message: message}
}

// NotFound reports that a required entity does not exist.
func NotFound(entity string, id any) *Error {
	return &Error{kind: KindNotFound, message: fmt.Sprintf("%s %v not found", entity, id)}
}

// DuplicateKey reports a uniqueness failure. code carries the domain meaning
// (for example employee.ErrDuplicateEmail) and may be nil.
func DuplicateKey(code error, constraint, message string, cause error) *Error {
	return &Error{kind: KindDuplicateKey, code: code, constraint: constraint, message: message, cause: cause}
}

// ConstraintViolation reports any non-unique integrity failure.
func ConstraintViolation(constraint, message string, cause error) *Error {
	return &Error{kind: KindConstraintViolation, constraint: constraint, message: message, cause: cause}
}

// Conflict reports that a guarded write found the row in an unexpected state.
func Conflict(message string) *Error {
	return &Error{kind: KindConflict, message: message}
}

func StorageUnavailable(message string, cause error) *Error {
	return &Error{kind: KindStorageUnavailable, message: message, cause: cause}
}

func ResourceExhausted(message string, cause error) *Error {
	return &Error{kind: KindResourceExhausted, message: message, cause: cause}
}

func Unauthorized(message string) *Error {
	return &Error{kind: KindUnauthorized, message: message}
}

func DependencyUnavailable(message string, cause error) *Error {
	return &Error{kind: KindDependencyUnavailable, message: message, cause: cause}
}

// Fatal reports a programming or data-integrity error that callers cannot
// handle meaningfully.
func Fatal(message string, cause error) *Error {
	return &Error{kind: KindFatal, message: message, cause: cause}
}

// KindOf returns the kind carried by err. Untyped errors are fatal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var derr *Error
	if errors.As(err, &derr) {
		return derr.kind
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return KindRuleViolation
	}
	return KindFatal
}

// ValidationError provides programmatic access to field-level failures of a
// request's shape, before any business rule runs.
// Use errors.Is(err, ErrRuleViolation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("invalid request: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrRuleViolation
}
