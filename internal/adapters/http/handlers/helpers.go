package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const msgInteger = "must be a valid integer"

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: msgInteger},
		}
	}
	return id, nil
}

// parseEmployeeFilter reads status, manager_id, limit and offset from the
// query string. Value rules are checked by the use case.
func parseEmployeeFilter(r *http.Request) (employee.Filter, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	f := employee.Filter{Status: employee.Status(q.Get("status"))}
	if v, ok := queryInt(q, "manager_id", fields); ok {
		id := int64(v)
		f.ManagerID = &id
	}
	if v, ok := queryInt(q, "limit", fields); ok {
		f.Limit = v
	}
	if v, ok := queryInt(q, "offset", fields); ok {
		f.Offset = v
	}

	if len(fields) > 0 {
		return employee.Filter{}, &domain.ValidationError{Fields: fields}
	}
	return f, nil
}

// parseTimesheetFilter reads status, from and to from the query string.
func parseTimesheetFilter(r *http.Request) (timesheet.Filter, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	f := timesheet.Filter{Status: timesheet.Status(q.Get("status"))}
	if d, ok := queryDate(q, "from", fields); ok {
		f.From = d
	}
	if d, ok := queryDate(q, "to", fields); ok {
		f.To = d
	}

	if len(fields) > 0 {
		return timesheet.Filter{}, &domain.ValidationError{Fields: fields}
	}
	return f, nil
}

func queryInt(q url.Values, key string, fields map[string]string) (int, bool) {
	raw := q.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fields[key] = msgInteger
		return 0, false
	}
	return v, true
}

func queryDate(q url.Values, key string, fields map[string]string) (time.Time, bool) {
	raw := q.Get(key)
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		fields[key] = "must be a date in YYYY-MM-DD form"
		return time.Time{}, false
	}
	return d, true
}

// requireActor returns the caller identity set by middleware.Actor. When it
// is missing it writes a 403 response and returns false.
func requireActor(w http.ResponseWriter, r *http.Request) (ports.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.Unauthorized("caller identity is required"))
		return ports.Actor{}, false
	}
	return actor, true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeOptional is decodeAndValidate for endpoints whose body may be
// omitted entirely.
func decodeOptional[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
