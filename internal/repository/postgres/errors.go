package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"hirehand-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateErr maps driver errors onto the domain taxonomy so nothing
// pgx-specific crosses the repository boundary.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrDuplicate)
		case pgForeignKeyViolation:
			// Referenced row is gone, e.g. applying to a deleted job.
			return domain.ErrNotFound
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}

// isConstraint reports whether err is a duplicate-key error on the
// named constraint.
func isConstraint(err error, name string) bool {
	return errors.Is(err, domain.ErrDuplicate) && strings.Contains(err.Error(), name)
}
