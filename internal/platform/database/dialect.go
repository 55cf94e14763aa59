package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the per-driver differences the adapter cares about.
type Dialect struct {
	name     string
	numbered bool
}

var (
	DialectPostgres = Dialect{name: "postgres", numbered: true}
	DialectSQLite   = Dialect{name: "sqlite"}
)

func dialectFor(driver string) (Dialect, error) {
	switch driver {
	case "pgx", "postgres":
		return DialectPostgres, nil
	case "sqlite":
		return DialectSQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Name returns "postgres" or "sqlite".
func (d Dialect) Name() string {
	return d.name
}

// Rebind rewrites "?" placeholders into the driver's native form. Question
// marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(q Query) string {
	if !d.numbered {
		return string(q)
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	quoted := false
	for i := 0; i < len(q); i++ {
		c := q[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// isolationLevel maps a configured name to a database/sql level. SQLite
// transactions are always serializable and the driver rejects explicit
// levels, so the setting is ignored there.
func (d Dialect) isolationLevel(name string) (sql.IsolationLevel, error) {
	var level sql.IsolationLevel
	switch name {
	case "", "default":
		level = sql.LevelDefault
	case "read_committed":
		level = sql.LevelReadCommitted
	case "repeatable_read":
		level = sql.LevelRepeatableRead
	case "serializable":
		level = sql.LevelSerializable
	default:
		return 0, fmt.Errorf("unsupported isolation level %q", name)
	}
	if d == DialectSQLite {
		return sql.LevelDefault, nil
	}
	return level, nil
}
