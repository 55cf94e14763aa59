// Package repository implements the persistence ports on top of the
// database adapter. All SQL lives here as database.Query constants; every
// value reaches the driver as a bound parameter.
package repository

import (
	"errors"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/database"
	"github.com/jsamuelsen11/timekeeper/internal/ports"
)

// querier picks the transaction behind scope, or the pool when there is none.
func querier(db *database.DB, scope ports.Scope) (database.Querier, error) {
	tx, err := database.TxFromScope(scope)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		return tx, nil
	}
	return db, nil
}

// retagDuplicate gives a DuplicateKey error on one of constraints its domain
// meaning. Other errors are returned unchanged.
func retagDuplicate(err error, code error, message string, constraints ...string) error {
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Kind() != domain.KindDuplicateKey {
		return err
	}
	for _, c := range constraints {
		if derr.Constraint() == c {
			return domain.DuplicateKey(code, derr.Constraint(), message, derr)
		}
	}
	return err
}

// nullable turns an optional value into a driver argument.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
