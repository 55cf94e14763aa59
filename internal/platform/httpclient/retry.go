package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// newBackOff returns the delay schedule for one call: initialInterval
// growing by multiplier up to maxInterval, each delay jittered.
func newBackOff(cfg retryConfig) *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     cfg.initialInterval,
		RandomizationFactor: jitterFraction,
		Multiplier:          cfg.multiplier,
		MaxInterval:         cfg.maxInterval,
	}
	b.Reset()
	return b
}

// doWithRetry sends req up to maxAttempts times. The body is buffered once
// and replayed on every attempt. On the final retryable status the response
// is returned with its body open alongside the error.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		body = b
	}

	delays := newBackOff(c.retry)
	var lastErr error
	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, delays.NextBackOff(), lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, err
			}
			lastErr = err
			continue
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.service)
		if attempt == c.retry.maxAttempts-1 {
			return resp, lastErr
		}
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

// pause logs the upcoming attempt and sleeps for delay.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, delay time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.service),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isRetryable reports whether a transport error deserves another attempt.
// Cancellation and deadline errors never do.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether status is 429 or any 5xx.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
