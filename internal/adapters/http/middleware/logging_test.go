package middleware_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
)

func TestLogging_RequestScopedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "timesheet submitted")
			w.WriteHeader(http.StatusCreated)
		}),
	)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/timesheets", http.NoBody)
	req.Header.Set("X-Request-ID", "req-77")
	req.Header.Set("X-Correlation-ID", "corr-12")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var lines []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			t.Fatalf("decoding log line: %v", err)
		}
		lines = append(lines, m)
	}

	wantMsgs := []string{"request started", "timesheet submitted", "request completed"}
	if len(lines) != len(wantMsgs) {
		t.Fatalf("log lines = %d, want %d: %v", len(lines), len(wantMsgs), lines)
	}
	for i, line := range lines {
		if line["msg"] != wantMsgs[i] {
			t.Errorf("line %d msg = %v, want %q", i, line["msg"], wantMsgs[i])
		}
		if line["request_id"] != "req-77" || line["correlation_id"] != "corr-12" {
			t.Errorf("line %d ids = %v/%v, want req-77/corr-12", i, line["request_id"], line["correlation_id"])
		}
	}
	if lines[0]["method"] != "POST" || lines[0]["path"] != "/api/v1/timesheets" {
		t.Errorf("start line = %v, want method and path", lines[0])
	}
	if lines[2]["status"] != float64(http.StatusCreated) {
		t.Errorf("completion status = %v, want 201", lines[2]["status"])
	}
}

func TestLogging_HeadersOnlyAtDebug(t *testing.T) {
	t.Parallel()

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo} {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
		h := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", http.NoBody)
		req.Header.Set("Authorization", "Bearer abc.def")
		h.ServeHTTP(httptest.NewRecorder(), req)

		out := buf.String()
		if got, want := strings.Contains(out, "request headers"), level == slog.LevelDebug; got != want {
			t.Errorf("level %v: headers logged = %t, want %t", level, got, want)
		}
		if strings.Contains(out, "abc.def") {
			t.Errorf("level %v: credential leaked: %s", level, out)
		}
	}
}

func TestLogging_Completion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success logs at info", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "not found logs at info", status: http.StatusNotFound, wantLevel: "level=INFO"},
		{name: "server error logs at error", status: http.StatusServiceUnavailable, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			r := chi.NewRouter()
			r.Use(middleware.Logging(testLogger(&buf)))
			r.Get("/api/v1/employees/{id}", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/employees/999", http.NoBody))

			var completed string
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, "request completed") {
					completed = line
				}
			}
			if completed == "" {
				t.Fatalf("no completion line in %q", buf.String())
			}
			for _, want := range []string{
				tt.wantLevel,
				fmt.Sprintf("status=%d", tt.status),
				"route=/api/v1/employees/{id}",
				"duration=",
			} {
				if !strings.Contains(completed, want) {
					t.Errorf("completion line %q missing %q", completed, want)
				}
			}
		})
	}
}
