// Package telemetry sets up OpenTelemetry tracing and metrics for the
// service and owns the instruments the rest of the code records into.
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry, profile)
//	defer p.Shutdown(ctx)
//	p.Metrics.WorkflowInvocationTotal.Add(ctx, 1, ...)
//
// Exporters are "stdout" for development and "otlp" (OTLP/HTTP) otherwise.
// With telemetry disabled Setup returns empty Providers and a nil Metrics,
// which every recorder in this module treats as "do not record".
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// meterName scopes every instrument this service registers.
const meterName = "github.com/jsamuelsen11/timekeeper"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrUseCase     = attribute.Key("use_case")
	AttrState       = attribute.Key("state")
	AttrErrorKind   = attribute.Key("error.kind")
	AttrDBSystem    = attribute.Key("db.system")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	WorkflowInvocationDuration metric.Float64Histogram
	WorkflowInvocationTotal    metric.Int64Counter
	DBAcquireDuration          metric.Float64Histogram

	meter metric.Meter
}

// Meter returns the meter the instruments were created from, for callers
// that register observable instruments of their own.
func (m *Metrics) Meter() metric.Meter {
	return m.meter
}

// Providers owns the SDK providers installed by Setup.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Shutdown flushes and stops whatever Setup started. Safe on empty Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Setup installs global tracer and meter providers for cfg and creates the
// instruments. profile is recorded as the deployment environment.
func Setup(ctx context.Context, cfg config.TelemetryConfig, profile string) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	res, err := newResource(cfg.ServiceName, profile)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp, err := InitTracer(ctx, res, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	p := &Providers{Tracer: tp}

	if p.Meter, err = InitMeter(ctx, res, cfg.Exporter, cfg.Endpoint); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	if p.Metrics, err = NewMetrics(p.Meter); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return p, nil
}

// InitTracer installs a batching TracerProvider exporting through exporter
// and the W3C trace-context and baggage propagators.
func InitTracer(ctx context.Context, res *resource.Resource, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	var (
		exp sdktrace.SpanExporter
		err error
	)
	if exporter == ExporterOTLP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	} else {
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a MeterProvider with a periodic reader over exporter.
func InitMeter(ctx context.Context, res *resource.Resource, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	var (
		exp sdkmetric.Exporter
		err error
	)
	if exporter == ExporterOTLP {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		exp, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics creates every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	b := &builder{meter: meter}

	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of outgoing HTTP requests", "s"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Outgoing HTTP requests", "{request}"),

		WorkflowInvocationDuration: b.histogram("workflow.invocation.duration",
			"Duration of use-case invocations from validation to terminal state", "s"),
		WorkflowInvocationTotal: b.counter("workflow.invocation.total",
			"Use-case invocations by terminal state", "{invocation}"),
		DBAcquireDuration: b.histogram("db.pool.acquire.duration",
			"Time spent waiting for a pooled database connection", "s"),

		meter: meter,
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// builder collects instrument creation errors so NewMetrics can report them
// together.
type builder struct {
	meter metric.Meter
	errs  []error
}

func (b *builder) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (b *builder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

// newResource describes this process to telemetry backends.
func newResource(serviceName, profile string) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if profile != "" {
		attrs = append(attrs, attribute.String("deployment.environment.name", profile))
	}
	return resource.Merge(resource.Default(), resource.NewWithAttributes(semconv.SchemaURL, attrs...))
}

func checkExporter(exporter, endpoint string) error {
	switch exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if endpoint == "" {
			return errors.New("otlp exporter requires an endpoint")
		}
		return nil
	default:
		return fmt.Errorf("unsupported exporter %q", exporter)
	}
}

// hostPort reduces "http://otel-collector:4318" to "otel-collector:4318".
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	return err == nil && u.Scheme == "https"
}
