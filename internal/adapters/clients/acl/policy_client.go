package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/clients/acl/policy"
	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/httpclient"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

var (
	_ ports.Authorizer    = (*PolicyClient)(nil)
	_ ports.HealthChecker = (*PolicyClient)(nil)
)

const decisionsPath = "/api/v1/decisions"

// PolicyClient implements ports.Authorizer by asking the policy service for
// a decision on every call. Nothing is cached. The httpclient underneath
// supplies retries, circuit breaking and tracing; a call that cannot get a
// decision fails with DependencyUnavailable so an enclosing transaction
// rolls back.
type PolicyClient struct {
	client *httpclient.Client
	logger *slog.Logger
}

func NewPolicyClient(client *httpclient.Client, logger *slog.Logger) *PolicyClient {
	return &PolicyClient{client: client, logger: logger}
}

// Authorize sends POST /api/v1/decisions and translates the answer.
func (c *PolicyClient) Authorize(ctx context.Context, actor ports.Actor, action ports.Action, subjectEmployeeID int64) error {
	attrs := []slog.Attr{
		slog.String("actor", actor.String()),
		slog.String("action", string(action)),
		slog.Int64("subject", subjectEmployeeID),
	}

	answer, err := exchange[policy.DecisionResponseDTO](ctx, c.client, decisionsPath,
		policy.ToDecisionRequest(actor, action, subjectEmployeeID))
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "authorization decision unavailable",
			append(attrs, slog.String("kind", string(domain.KindOf(err))), slog.Any("error", err))...)
		return err
	}

	if err := policy.ToDomainDecision(answer, action); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelInfo, "authorization denied", attrs...)
		return err
	}
	return nil
}

// Name is the readiness check name.
func (c *PolicyClient) Name() string {
	return "authz-api"
}

// HealthCheck reports the circuit breaker state without a network call.
func (c *PolicyClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
