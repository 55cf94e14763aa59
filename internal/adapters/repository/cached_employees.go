package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

const employeeKeyPrefix = "timekeeper:employee:"

// CachedEmployees is a read-through redis cache in front of an
// EmployeeRepository. Only GetByID outside a transaction is served from the
// cache; reads inside a scope always go to the database so they observe the
// transaction's own writes. Redis failures are logged and the call falls
// through to the wrapped repository.
type CachedEmployees struct {
	next   ports.EmployeeRepository
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.EmployeeRepository = (*CachedEmployees)(nil)

// NewCachedEmployees wraps next with a cache stored in client.
func NewCachedEmployees(next ports.EmployeeRepository, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedEmployees {
	return &CachedEmployees{next: next, client: client, ttl: ttl, logger: logger}
}

// cachedEmployee is the stored representation. It is private to the cache so
// the entity carries no serialization tags.
type cachedEmployee struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	ManagerID       *int64    `json:"manager_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func employeeKey(id int64) string {
	return employeeKeyPrefix + strconv.FormatInt(id, 10)
}

// Create is not cached; the first GetByID fills the entry.
func (c *CachedEmployees) Create(ctx context.Context, scope ports.Scope, e *employee.Employee) (*employee.Employee, error) {
	return c.next.Create(ctx, scope, e)
}

// GetByID serves unscoped reads from the cache and fills it on a miss. A fill
// racing a status change can store the old row; the after-commit eviction in
// UpdateStatus and the TTL bound how long it lives. Writers that depend on
// the current status must check it inside their scope (see HoldActive).
func (c *CachedEmployees) GetByID(ctx context.Context, scope ports.Scope, id int64) (*employee.Employee, error) {
	if scope != nil {
		return c.next.GetByID(ctx, scope, id)
	}

	key := employeeKey(id)
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ce cachedEmployee
		if jsonErr := json.Unmarshal(raw, &ce); jsonErr == nil {
			e := ce.toEmployee()
			return &e, nil
		}
		c.logger.WarnContext(ctx, "discarding unreadable cache entry",
			slog.String("key", key),
		)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "employee cache read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	e, err := c.next.GetByID(ctx, nil, id)
	if err != nil || e == nil {
		return e, err
	}
	c.store(ctx, e)
	return e, nil
}

// GetByEmail always reads storage.
func (c *CachedEmployees) GetByEmail(ctx context.Context, scope ports.Scope, email string) (*employee.Employee, error) {
	return c.next.GetByEmail(ctx, scope, email)
}

// List always reads storage.
func (c *CachedEmployees) List(ctx context.Context, scope ports.Scope, filter employee.Filter) ([]employee.Employee, error) {
	return c.next.List(ctx, scope, filter)
}

// UpdateStatus evicts the cached employee once the change is durable: after
// commit inside a scope, immediately otherwise.
func (c *CachedEmployees) UpdateStatus(ctx context.Context, scope ports.Scope, id int64, from, to employee.Status, now time.Time) (bool, error) {
	ok, err := c.next.UpdateStatus(ctx, scope, id, from, to, now)
	if err != nil || !ok {
		return ok, err
	}
	if scope != nil {
		scope.AfterCommit(func(ctx context.Context) { c.evict(ctx, id) })
	} else {
		c.evict(ctx, id)
	}
	return true, nil
}

// HoldActive always reads storage; it never touches the cache.
func (c *CachedEmployees) HoldActive(ctx context.Context, scope ports.Scope, id int64) (bool, error) {
	return c.next.HoldActive(ctx, scope, id)
}

func (c *CachedEmployees) store(ctx context.Context, e *employee.Employee) {
	raw, err := json.Marshal(fromEmployee(e))
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, employeeKey(e.ID), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "employee cache write failed",
			slog.Int64("employee_id", e.ID),
			slog.Any("error", err),
		)
	}
}

func (c *CachedEmployees) evict(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, employeeKey(id)).Err(); err != nil {
		c.logger.WarnContext(ctx, "employee cache eviction failed",
			slog.Int64("employee_id", id),
			slog.Any("error", err),
		)
	}
}

func fromEmployee(e *employee.Employee) cachedEmployee {
	return cachedEmployee{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		Status:          string(e.Status),
		HourlyRateCents: e.HourlyRateCents,
		ManagerID:       e.ManagerID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (ce cachedEmployee) toEmployee() employee.Employee {
	return employee.Employee{
		ID:              ce.ID,
		Name:            ce.Name,
		Email:           ce.Email,
		Status:          employee.Status(ce.Status),
		HourlyRateCents: ce.HourlyRateCents,
		ManagerID:       ce.ManagerID,
		CreatedAt:       ce.CreatedAt,
		UpdatedAt:       ce.UpdatedAt,
	}
}
