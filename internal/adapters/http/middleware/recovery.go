package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
)

// errHandlerPanic is Fatal, so clients only ever see the generic 500 detail.
var errHandlerPanic = domain.Fatal("handler panicked", nil)

// Recovery turns a handler panic into a logged Fatal error and a problem
// response. A panic after the status line went out is only logged.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // panic value, not a wrapped error
					panic(v)
				}

				ctx := r.Context()
				trace.SpanFromContext(ctx).SetStatus(codes.Error, "panic")

				logger.LogAttrs(ctx, slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("panic_type", fmt.Sprintf("%T", v)),
					slog.String("method", r.Method),
					slog.String("route", routeOf(r)),
					slog.Bool("response_started", rw.headerWritten),
					slog.String("stack", string(debug.Stack())),
				)
				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errHandlerPanic)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
