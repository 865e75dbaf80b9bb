package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"poisepms/internal/domain"
)

// storeErr tags err with domain.ErrStore while keeping the driver error in
// the chain. PostgreSQL errors also carry their SQLSTATE and, when set, the
// violated constraint.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.ConstraintName != "" {
			return fmt.Errorf("%w: %s: %w (sqlstate %s, constraint %s)", domain.ErrStore, op, err, pgErr.Code, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s: %w (sqlstate %s)", domain.ErrStore, op, err, pgErr.Code)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
}
