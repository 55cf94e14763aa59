package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(rw *responseWriter)
		wantStatus  int
		wantWritten int64
	}{
		{name: "nothing written", write: func(*responseWriter) {}, wantStatus: http.StatusOK},
		{
			name:       "explicit status",
			write:      func(rw *responseWriter) { rw.WriteHeader(http.StatusNotFound) },
			wantStatus: http.StatusNotFound,
		},
		{
			name: "first status wins",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusConflict)
				rw.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "body counts bytes",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte(`{"id":1}`))
				_, _ = rw.Write([]byte("\n"))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("recorded status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rw.written != tt.wantWritten {
				t.Errorf("written = %d, want %d", rw.written, tt.wantWritten)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if got := newResponseWriter(rec).Unwrap(); got != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}

func TestRouteOf(t *testing.T) {
	t.Parallel()

	var got string
	r := chi.NewRouter()
	r.Get("/api/v1/timesheets/{id}", func(_ http.ResponseWriter, req *http.Request) {
		got = routeOf(req)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/timesheets/10", http.NoBody))

	if got != "/api/v1/timesheets/{id}" {
		t.Errorf("routeOf() inside chi = %q, want the pattern", got)
	}

	plain := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
	if got := routeOf(plain); got != "/health/live" {
		t.Errorf("routeOf() outside chi = %q, want the path", got)
	}
}
