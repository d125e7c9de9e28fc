package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// sqlStates maps the SQLSTATE codes the aggregate store can raise to domain
// sentinels.
var sqlStates = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: id or case_reference taken
	"23503": domain.ErrNotFound,      // foreign_key_violation: parent row gone
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError converts an error raised while touching entity id into a domain
// sentinel. Context errors and unknown SQLSTATEs are wrapped as they are.
// The violated constraint, when known, is kept in the message.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	subject := fmt.Sprintf("%s %s", entity, id)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlStates[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s (%s): %w", subject, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s: %w", subject, sentinel)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
