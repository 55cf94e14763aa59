// Package middleware holds the inbound request pipeline. cmd/server
// installs it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Actor → Timeout → Handler
//
// Stack builds that slice; the router installs it with chi's Use.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// responseWriter records the status and byte count a handler produced.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader keeps the first status only.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode, rw.headerWritten = code, true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// routeOf returns the chi route pattern that served r, such as
// "/api/v1/employees/{id}", so ids do not explode span and metric
// cardinality. Outside a chi router it falls back to the raw path. Call it
// after the handler has run.
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
