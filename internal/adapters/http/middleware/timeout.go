package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler sees the deadline on its
// context, so repository and outbound calls stop with it. A handler that has
// not finished when d elapses loses the response: the client receives a 504
// problem body and whatever the handler writes later is discarded.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(buf, r)
			}()

			select {
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				if buf.abandon() {
					dto.WriteErrorResponse(w, r, context.DeadlineExceeded)
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// it is delivered.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// abandon marks the buffer discarded. It reports false when the handler had
// already written a status, in which case nothing more is sent.
func (b *bufferedWriter) abandon() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
	return b.status == 0
}

func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
