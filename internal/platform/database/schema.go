package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ApplySchema creates the service's tables and indexes if they do not exist.
// Every statement is idempotent and all of them run in one transaction.
func (db *DB) ApplySchema(ctx context.Context) error {
	raw, err := schemaFS.ReadFile("schema/" + db.dialect.Name() + ".sql")
	if err != nil {
		return fmt.Errorf("reading %s schema: %w", db.dialect.Name(), err)
	}
	statements := splitStatements(string(raw))

	err = db.WithTransaction(ctx, nil, func(ctx context.Context, scope ports.Scope) error {
		tx, err := TxFromScope(scope)
		if err != nil {
			return err
		}
		for _, stmt := range statements {
			// Embedded, trusted DDL.
			if _, err := tx.Execute(ctx, Query(stmt)); err != nil {
				return fmt.Errorf("applying schema statement %q: %w", firstLine(stmt), err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	db.logger.InfoContext(ctx, "database schema applied",
		slog.String("dialect", db.dialect.Name()),
		slog.Int("statements", len(statements)),
	)
	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p), ";"))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
