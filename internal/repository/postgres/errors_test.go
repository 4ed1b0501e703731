package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hirehand-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateErr(t *testing.T) {
	t.Run("Should pass nil through", func(t *testing.T) {
		assert.NoError(t, translateErr(nil))
	})

	t.Run("Should map no rows to not found", func(t *testing.T) {
		assert.ErrorIs(t, translateErr(pgx.ErrNoRows), domain.ErrNotFound)
	})

	t.Run("Should map a unique violation to duplicate keyed by constraint", func(t *testing.T) {
		err := translateErr(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.True(t, isConstraint(err, "users_email_key"))
		assert.False(t, isConstraint(err, "users_username_key"))
	})

	t.Run("Should distinguish the application pair constraint", func(t *testing.T) {
		err := translateErr(&pgconn.PgError{Code: "23505", ConstraintName: "job_applications_job_id_candidate_id_key"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.True(t, isConstraint(err, "job_applications_job_id_candidate_id_key"))
	})

	t.Run("Should map a foreign key violation to not found", func(t *testing.T) {
		err := translateErr(&pgconn.PgError{Code: "23503", ConstraintName: "job_applications_candidate_id_fkey"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should map timeouts to store unavailable", func(t *testing.T) {
		err := translateErr(fmt.Errorf("exec: %w", context.DeadlineExceeded))
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("Should leave other driver errors untouched", func(t *testing.T) {
		syntaxErr := &pgconn.PgError{Code: "42601", Message: "syntax error"}
		err := translateErr(syntaxErr)
		assert.False(t, errors.Is(err, domain.ErrDuplicate))
		assert.False(t, errors.Is(err, domain.ErrNotFound))
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
	})
}
