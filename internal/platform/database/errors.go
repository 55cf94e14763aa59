package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
)

// classify translates a driver error into the domain taxonomy. Errors that
// are already classified, and context errors, pass through unchanged.
// Anything unrecognized is wrapped with op and surfaces as fatal.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var derr *domain.Error
	if errors.As(err, &derr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(op, pgErr.Code, pgErr.ConstraintName, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(op, string(pqErr.Code), pqErr.Constraint, err)
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return classifySQLite(op, liteErr, err)
	}

	if isConnectivity(err) {
		return domain.StorageUnavailable(op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// Client-facing messages for driver failures. The driver text, which names
// tables and constraints, stays in the wrapped cause.
const (
	msgUniqueViolated     = "unique constraint violated"
	msgConstraintViolated = "constraint violated"
	msgConcurrentUpdate   = "concurrent update, retry the request"
)

func classifySQLState(op, code, constraint string, err error) error {
	switch {
	case code == "23505":
		return domain.DuplicateKey(nil, constraint, msgUniqueViolated, err)
	case code == "23503", code == "23502", code == "23514", code == "23P01":
		return domain.ConstraintViolation(constraint, msgConstraintViolated, err)
	case code == "40001", code == "40P01":
		return domain.Conflict(msgConcurrentUpdate)
	case code == "57P01", code == "57P02", code == "57P03", strings.HasPrefix(code, "08"):
		return domain.StorageUnavailable(op, err)
	case strings.HasPrefix(code, "53"):
		return domain.ResourceExhausted(op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func classifySQLite(op string, liteErr *sqlite.Error, err error) error {
	code := liteErr.Code()
	switch code & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		constraint := sqliteConstraint(liteErr.Error())
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return domain.DuplicateKey(nil, constraint, msgUniqueViolated, err)
		}
		return domain.ConstraintViolation(constraint, msgConstraintViolated, err)
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
		return domain.StorageUnavailable(op, err)
	case sqlite3.SQLITE_FULL, sqlite3.SQLITE_NOMEM:
		return domain.ResourceExhausted(op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// sqliteConstraint extracts the constraint target from messages such as
// "UNIQUE constraint failed: employees.email". Foreign key failures carry no
// target and yield "foreign_key".
func sqliteConstraint(msg string) string {
	const marker = "constraint failed"
	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return ""
	}
	kind := msg[:i]
	if j := strings.LastIndex(kind, ": "); j >= 0 {
		kind = kind[j+2:]
	}
	rest := strings.TrimPrefix(msg[i+len(marker):], ":")
	if end := strings.Index(rest, " ("); end >= 0 {
		rest = rest[:end]
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(kind)), " ", "_")
	}
	return rest
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "database is closed")
}
