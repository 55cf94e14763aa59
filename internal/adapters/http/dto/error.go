package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
)

// retryAfterSeconds is advertised when the connection pool is exhausted.
const retryAfterSeconds = "1"

const internalErrorDetail = "internal server error"

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Kind     string        `json:"kind,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level failure within an
// ErrorResponse. Rule is set for business rule violations.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Rule     string `json:"rule,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from an error returned
// by a use case. Fatal and unclassified errors never expose their message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := errorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	}

	resp.Kind, resp.Detail = describe(err, resp.Title)

	var verr *domain.ValidationError
	var derr *domain.Error
	switch {
	case errors.As(err, &verr):
		resp.Errors = validationFieldsToDetails(verr.Fields)
	case errors.As(err, &derr) && derr.Kind() == domain.KindRuleViolation:
		resp.Errors = []ErrorDetail{{
			Location: "body." + derr.Field(),
			Message:  derr.Message(),
			Rule:     derr.Rule(),
		}}
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given error.
// It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())

	if resp.Status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("operation", r.Method+" "+r.URL.Path),
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	if errors.Is(err, domain.ErrResourceExhausted) {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// describe returns the kind label and the client-safe detail for err.
// fallback is used when a typed error carries no message.
func describe(err error, fallback string) (kind, detail string) {
	var verr *domain.ValidationError
	var derr *domain.Error
	switch {
	case errors.As(err, &verr):
		return string(domain.KindRuleViolation), verr.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "", "request deadline exceeded"
	case errors.As(err, &derr) && derr.Kind() != domain.KindFatal:
		if derr.Message() == "" {
			return string(derr.Kind()), fallback
		}
		return string(derr.Kind()), derr.Message()
	default:
		return string(domain.KindFatal), internalErrorDetail
	}
}

// kindStatus is the single Kind to HTTP status mapping. Kinds not listed,
// Fatal included, are 500.
var kindStatus = map[domain.Kind]int{
	domain.KindRuleViolation:         http.StatusUnprocessableEntity,
	domain.KindNotFound:              http.StatusNotFound,
	domain.KindDuplicateKey:          http.StatusConflict,
	domain.KindConstraintViolation:   http.StatusConflict,
	domain.KindConflict:              http.StatusConflict,
	domain.KindUnauthorized:          http.StatusForbidden,
	domain.KindResourceExhausted:     http.StatusServiceUnavailable,
	domain.KindStorageUnavailable:    http.StatusServiceUnavailable,
	domain.KindDependencyUnavailable: http.StatusServiceUnavailable,
}

func errorToStatus(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	if status, ok := kindStatus[domain.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// validationFieldsToDetails lists request-shape failures ordered by field.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		details = append(details, ErrorDetail{Location: "body." + field, Message: fields[field]})
	}
	return details
}

// WriteProblem writes a problem response for failures that carry no domain
// error, such as an unknown route.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}
