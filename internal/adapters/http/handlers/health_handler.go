package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const (
	checkOK      = "ok"
	checkFailing = "failing"

	readinessReady    = "ready"
	readinessNotReady = "not_ready"
)

// HealthHandler serves /health/live and /health/ready.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers 200 while the process can serve HTTP at all. It never
// consults dependencies, so a database outage does not get the pod killed.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: checkOK})
}

// Readiness runs every registered check. Any failure turns the answer into
// 503 not_ready, and each failure is logged at WARN.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := dto.HealthResponse{
		Status: readinessReady,
		Checks: make(map[string]dto.CheckResult, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = dto.CheckResult{Status: checkOK}
			continue
		}
		resp.Checks[name] = dto.CheckResult{Status: checkFailing, Error: err.Error()}
		resp.Status, code = readinessNotReady, http.StatusServiceUnavailable
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
			slog.String("check", name), slog.Any("error", err))
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
