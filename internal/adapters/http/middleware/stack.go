package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
)

// Stack returns the request pipeline in installation order, outermost
// first. timeout bounds each request; zero disables the deadline.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Actor(),
	}
	if timeout > 0 {
		mws = append(mws, Timeout(timeout))
	}
	return mws
}
