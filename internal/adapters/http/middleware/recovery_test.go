package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name: "no panic passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("timesheet 7"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "timesheet 7",
		},
		{
			name:       "string panic becomes 500",
			handler:    func(http.ResponseWriter, *http.Request) { panic("ledger exploded") },
			wantStatus: http.StatusInternalServerError,
			wantLogged: true,
		},
		{
			name:       "error panic becomes 500",
			handler:    func(http.ResponseWriter, *http.Request) { panic(errors.New("nil balance")) },
			wantStatus: http.StatusInternalServerError,
			wantLogged: true,
		},
		{
			name: "panic after status keeps the status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Recovery(testLogger(&buf))(tt.handler)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/timesheets", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := strings.Contains(buf.String(), "panic recovered"); got != tt.wantLogged {
				t.Errorf("panic logged = %t, want %t; log: %s", got, tt.wantLogged, buf.String())
			}
		})
	}
}

func TestRecovery_ProblemBodyHidesPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("secret internal state")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1", http.NoBody))

	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if title, _ := body["title"].(string); title != "Internal Server Error" {
		t.Errorf("title = %q, want Internal Server Error", title)
	}
	if detail, _ := body["detail"].(string); strings.Contains(detail, "secret") {
		t.Errorf("detail leaks the panic value: %q", detail)
	}

	log := buf.String()
	for _, want := range []string{"secret internal state", "panic_type=string", "goroutine"} {
		if !strings.Contains(log, want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestRecovery_LogsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Recovery(testLogger(&buf)))
	r.Get("/api/v1/employees/{id}", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees/42", http.NoBody))

	if !strings.Contains(buf.String(), "route=/api/v1/employees/{id}") {
		t.Errorf("log missing route pattern: %s", buf.String())
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler { //nolint:errorlint // panic value
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	t.Error("ServeHTTP returned, want re-panic")
}
