// Package invocation tracks one execution of a use case through its phases
// and reports how it ended.
//
// Every invocation starts in Validating. Business rules and reads run there.
// Persist moves it to Persisting, after which no further validation may
// start. Finish records the terminal state:
//
//	Validating --err--> Failed
//	Validating --ok---> Committed   (read-only use cases)
//	Persisting --err--> RolledBack
//	Persisting --ok---> Committed
//
// Typical use:
//
//	func (s *Service) DoThing(ctx context.Context) (err error) {
//	    ctx, inv := invocation.Begin(ctx, "DoThing", s.metrics)
//	    defer func() { inv.Finish(ctx, err) }()
//
//	    if err := inv.Validate(func() error { return rules.Check(x) }); err != nil {
//	        return err
//	    }
//	    return inv.Persist(ctx, func(ctx context.Context) error { ... })
//	}
package invocation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
)

// State is a phase of an invocation.
type State string

const (
	StateValidating State = "validating"
	StatePersisting State = "persisting"
	StateCommitted  State = "committed"
	StateFailed     State = "failed"
	StateRolledBack State = "rolled_back"
)

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateCommitted || s == StateFailed || s == StateRolledBack
}

const tracerName = "github.com/jsamuelsen11/timekeeper/internal/app"

// Invocation is a single run of a use case. It is not safe for concurrent
// use; fan-out creates one Invocation per item.
type Invocation struct {
	useCase string
	metrics *telemetry.Metrics
	span    trace.Span
	start   time.Time
	state   State
}

// Begin starts an invocation of useCase in the Validating state and opens a
// span for it. The returned context carries the span. A nil metrics disables
// recording.
func Begin(ctx context.Context, useCase string, metrics *telemetry.Metrics) (context.Context, *Invocation) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "app."+useCase)
	logging.FromContext(ctx).DebugContext(ctx, "use case started",
		slog.String("operation", useCase),
	)
	return ctx, &Invocation{
		useCase: useCase,
		metrics: metrics,
		span:    span,
		start:   time.Now(),
		state:   StateValidating,
	}
}

// State returns the current phase.
func (inv *Invocation) State() State {
	return inv.state
}

// UseCase returns the name the invocation was started with.
func (inv *Invocation) UseCase() string {
	return inv.useCase
}

// Validate runs fn as part of the validation phase.
func (inv *Invocation) Validate(fn func() error) error {
	if inv.state != StateValidating {
		return inv.phaseError("validate")
	}
	return fn()
}

// Persist enters the Persisting phase and runs fn.
func (inv *Invocation) Persist(ctx context.Context, fn func(ctx context.Context) error) error {
	if inv.state != StateValidating {
		return inv.phaseError("persist")
	}
	inv.state = StatePersisting
	return fn(ctx)
}

func (inv *Invocation) phaseError(step string) error {
	return domain.Fatal(fmt.Sprintf("%s: cannot %s while %s", inv.useCase, step, inv.state), nil)
}

// Finish moves the invocation to its terminal state according to err, then
// logs and counts the outcome. Calls after the first are ignored.
func (inv *Invocation) Finish(ctx context.Context, err error) {
	if inv.state.Terminal() {
		return
	}

	switch {
	case err == nil:
		inv.state = StateCommitted
	case inv.state == StatePersisting:
		inv.state = StateRolledBack
	default:
		inv.state = StateFailed
	}

	elapsed := time.Since(inv.start)
	kind := errorKind(err)
	inv.log(ctx, err, kind, elapsed)
	inv.record(ctx, kind, elapsed)

	inv.span.SetAttributes(telemetry.AttrState.String(string(inv.state)))
	if err != nil {
		inv.span.RecordError(err)
		inv.span.SetStatus(codes.Error, kind)
	}
	inv.span.End()
}

// errorKind labels err for logs and metrics. Context errors are reported as
// such rather than as fatal.
func errorKind(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline_exceeded"
	default:
		return string(domain.KindOf(err))
	}
}

func (inv *Invocation) log(ctx context.Context, err error, kind string, elapsed time.Duration) {
	logger := logging.FromContext(ctx)
	attrs := []any{
		slog.String("operation", inv.useCase),
		slog.String("state", string(inv.state)),
		slog.Duration("duration", elapsed),
	}

	if err == nil {
		logger.InfoContext(ctx, "use case committed", attrs...)
		return
	}

	attrs = append(attrs, slog.String("error_kind", kind), slog.Any("error", err))
	switch domain.Kind(kind) {
	case domain.KindFatal, domain.KindStorageUnavailable, domain.KindResourceExhausted, domain.KindDependencyUnavailable:
		logger.ErrorContext(ctx, "use case failed", attrs...)
	default:
		logger.WarnContext(ctx, "use case rejected", attrs...)
	}
}

func (inv *Invocation) record(ctx context.Context, kind string, elapsed time.Duration) {
	if inv.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrUseCase.String(inv.useCase),
		telemetry.AttrState.String(string(inv.state)),
		telemetry.AttrErrorKind.String(kind),
	)
	inv.metrics.WorkflowInvocationTotal.Add(ctx, 1, attrs)
	inv.metrics.WorkflowInvocationDuration.Record(ctx, elapsed.Seconds(), attrs)
}
