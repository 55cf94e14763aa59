package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database/databasetest"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCachedEmployees_FallsBackWhenRedisIsDown(t *testing.T) {
	t.Parallel()
	db := databasetest.New(t)
	base := NewEmployees(db)
	cached := NewCachedEmployees(base, unreachableRedis(t), time.Minute, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	e := createEmployee(t, base, "a@example.com")

	got, err := cached.GetByID(ctx, nil, e.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v, want fallback to database", err)
	}
	if got == nil || got.ID != e.ID {
		t.Fatalf("GetByID() = %v, want employee %d", got, e.ID)
	}

	ok, err := cached.UpdateStatus(ctx, nil, e.ID, employee.StatusActive, employee.StatusInactive, testNow)
	if err != nil || !ok {
		t.Errorf("UpdateStatus() = (%v, %v), want (true, nil) despite eviction failure", ok, err)
	}

	missing, err := cached.GetByID(ctx, nil, 999)
	if err != nil || missing != nil {
		t.Errorf("GetByID(999) = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestCachedEmployees_ScopedReadsBypassCache(t *testing.T) {
	t.Parallel()
	db := databasetest.New(t)
	base := NewEmployees(db)
	cached := NewCachedEmployees(base, unreachableRedis(t), time.Minute, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	e := createEmployee(t, base, "a@example.com")

	var evictions int
	err := db.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
		got, err := cached.GetByID(ctx, scope, e.ID)
		if err != nil || got == nil {
			t.Errorf("GetByID() in scope = (%v, %v)", got, err)
		}
		held, err := cached.HoldActive(ctx, scope, e.ID)
		if err != nil || !held {
			t.Errorf("HoldActive() in scope = (%v, %v), want (true, nil)", held, err)
		}
		scope.AfterCommit(func(context.Context) { evictions++ })
		_, err = cached.UpdateStatus(ctx, scope, e.ID, employee.StatusActive, employee.StatusInactive, testNow)
		return err
	})
	if err != nil {
		t.Fatalf("WithTransaction() error = %v", err)
	}
	if evictions != 1 {
		t.Errorf("after-commit hooks ran %d times, want 1", evictions)
	}
}

func TestCachedEmployee_Conversion(t *testing.T) {
	t.Parallel()

	manager := int64(7)
	e := employee.Employee{
		ID: 1, Name: "Ada", Email: "ada@example.com", Status: employee.StatusActive,
		HourlyRateCents: 5000, ManagerID: &manager, CreatedAt: testNow, UpdatedAt: testNow,
	}
	back := fromEmployee(&e).toEmployee()
	if back.ID != e.ID || back.Email != e.Email || back.Status != e.Status || *back.ManagerID != manager {
		t.Errorf("conversion lost data: %+v", back)
	}
	if got := employeeKey(42); got != "timekeeper:employee:42" {
		t.Errorf("employeeKey(42) = %q", got)
	}
}
