// Package logging builds the service's slog logger and carries
// request-scoped loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "timekeeper"))
//	ctx = logging.WithLogger(ctx, logger)
//	ctx = logging.With(ctx, slog.Int64("employee_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "employee terminated")
//
// Error logs from use cases carry the operation name, the entity ids and
// the full error via slog.Any("error", err). Records written with a context
// that holds a recording span also get trace_id and span_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case; anything else means info. format "text" selects
// slog.TextHandler and everything else JSON. Debug logging adds source
// locations. attrs are attached to every record.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}
	return slog.New(&traceHandler{Handler: h})
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With stores a child of the context logger carrying attrs.
func With(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
