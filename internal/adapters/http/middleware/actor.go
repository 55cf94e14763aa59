package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/logging"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const (
	// HeaderActorID carries the caller's employee id, set by the gateway.
	HeaderActorID = "X-Actor-ID"
	// HeaderActorRole carries the caller's role, set by the gateway.
	HeaderActorRole = "X-Actor-Role"
)

type actorKey struct{}

// Actor returns middleware that reads the caller identity forwarded by the
// gateway and stores it in the request context. Requests without the
// headers pass through anonymously; handlers that need an actor reject them.
// A malformed id is rejected with 400.
//
// This middleware should be registered after Logging so that the actor is
// attached to the request-scoped logger.
func Actor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := strings.TrimSpace(r.Header.Get(HeaderActorID))
			if rawID == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || id <= 0 {
				dto.WriteErrorResponse(w, r, &domain.ValidationError{
					Fields: map[string]string{HeaderActorID: "must be a positive integer"},
				})
				return
			}

			actor := ports.Actor{
				EmployeeID: id,
				Role:       strings.TrimSpace(r.Header.Get(HeaderActorRole)),
			}
			ctx := WithActor(r.Context(), actor)
			ctx = logging.With(ctx, slog.String("actor", actor.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor ports.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the caller identity stored by Actor.
func ActorFromContext(ctx context.Context) (ports.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(ports.Actor)
	return actor, ok
}
