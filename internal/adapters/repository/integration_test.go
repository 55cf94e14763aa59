//go:build integration

package repository

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/domain/employee"
	"github.com/jsamuelsen11/timekeeper/internal/domain/timesheet"
	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database/databasetest"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// startPostgres runs a disposable postgres and returns a pool for driver
// ("pgx" or "postgres") with the schema applied.
func startPostgres(t *testing.T, driver string) *database.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("timekeeper"),
		tcpostgres.WithUsername("timekeeper"),
		tcpostgres.WithPassword("timekeeper"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	return databasetest.Open(t, config.DatabaseConfig{
		Driver:         driver,
		DSN:            dsn,
		MaxOpenConns:   4,
		MaxIdleConns:   4,
		AcquireTimeout: 2 * time.Second,
		TxTimeout:      5 * time.Second,
		Isolation:      "read_committed",
	})
}

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	addr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get redis connection string: %v", err)
	}
	opts, err := redis.ParseURL(addr)
	if err != nil {
		t.Fatalf("failed to parse redis URL: %v", err)
	}
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}
	return client
}

func TestPostgres_Repositories(t *testing.T) {
	for _, driver := range []string{"pgx", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			db := startPostgres(t, driver)
			employees := NewEmployees(db)
			timesheets := NewTimesheets(db)
			ctx := context.Background()

			emp := createEmployee(t, employees, "ada@example.com")

			dup := employee.New("Ada Again", "ada@example.com", 1, nil, testNow)
			_, err := employees.Create(ctx, nil, &dup)
			if !errors.Is(err, employee.ErrDuplicateEmail) {
				t.Errorf("duplicate Create() error = %v, want ErrDuplicateEmail", err)
			}

			ts := timesheet.New(emp.ID, testNow, 6, "", testNow)
			if _, err := timesheets.Create(ctx, nil, &ts); err != nil {
				t.Fatalf("timesheet Create() error = %v", err)
			}
			_, err = timesheets.Create(ctx, nil, &ts)
			if !errors.Is(err, timesheet.ErrDuplicateDay) {
				t.Errorf("duplicate timesheet error = %v, want ErrDuplicateDay", err)
			}

			missing := int64(999)
			orphan := employee.New("Orphan", "orphan@example.com", 1, &missing, testNow)
			_, err = employees.Create(ctx, nil, &orphan)
			if domain.KindOf(err) != domain.KindConstraintViolation {
				t.Errorf("foreign key kind = %q, want constraint_violation", domain.KindOf(err))
			}

			got, err := employees.GetByID(ctx, nil, 999)
			if err != nil || got != nil {
				t.Errorf("GetByID(999) = (%v, %v), want (nil, nil)", got, err)
			}
		})
	}
}

func TestCachedEmployees_ReadThroughAndInvalidate(t *testing.T) {
	db := startPostgres(t, "pgx")
	client := startRedis(t)
	base := NewEmployees(db)
	cached := NewCachedEmployees(base, client, time.Minute, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	emp := createEmployee(t, base, "ada@example.com")

	if _, err := cached.GetByID(ctx, nil, emp.ID); err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if n, _ := client.Exists(ctx, employeeKey(emp.ID)).Result(); n != 1 {
		t.Fatal("GetByID() did not populate the cache")
	}

	err := db.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
		if _, err := cached.UpdateStatus(ctx, scope, emp.ID, employee.StatusActive, employee.StatusInactive, testNow); err != nil {
			return err
		}
		if n, _ := client.Exists(ctx, employeeKey(emp.ID)).Result(); n != 1 {
			t.Error("cache entry evicted before commit")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTransaction() error = %v", err)
	}
	if n, _ := client.Exists(ctx, employeeKey(emp.ID)).Result(); n != 0 {
		t.Error("cache entry survived commit")
	}

	got, err := cached.GetByID(ctx, nil, emp.ID)
	if err != nil || got.Status != employee.StatusInactive {
		t.Errorf("GetByID() after commit = (%v, %v), want inactive", got, err)
	}
}
