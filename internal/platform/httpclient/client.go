// Package httpclient is the outbound HTTP client used for downstream
// services such as the authorization policy service. Every call runs through
// a circuit breaker, an optional rate limiter, request metadata propagation,
// an OpenTelemetry client span and a bounded retry loop, in that order.
//
//	client := httpclient.New(&cfg.Client, "authz-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores request and correlation ids with WithRequestID
// and WithCorrelationID; Do copies them onto the outbound request.
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
)

// Client wraps *http.Client with resilience and instrumentation. It is safe
// for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables rate limiting
	retry   retryConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// retryConfig is the subset of config.RetryConfig the retry loop needs.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// New builds a Client for the downstream named service. service labels
// spans, metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, service string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		service: service,
		retry: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	c.breaker = newBreaker(service, cfg.CircuitBreaker, logger)
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

func newBreaker(service string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req and returns the downstream response.
//
// A non-retryable status returns the response with a nil error. When retries
// are exhausted on a retryable status both the last response and an error
// are returned, and the caller still closes the body. Breaker rejections
// (gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests) and transport
// errors return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		propagate(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.doWithRetry(spanCtx, req.WithContext(spanCtx))
		endSpan(span, r, err)
		return r, err
	})

	c.record(ctx, method, start, resp, err)
	return resp, err
}

// BaseURL returns the configured downstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Name returns the downstream service identifier (e.g., "authz-api").
func (c *Client) Name() string { return c.service }

// HealthCheck reports the downstream service's availability from the circuit
// breaker state. No network call is made. A half-open breaker reports
// degraded and an open breaker reports failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.service)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.service)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.service, state)
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
