package usecase

import (
	"errors"

	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"
)

// storeError maps repository failures the HTTP layer should not see in
// raw form. AppErrors pass through; transient store failures become a
// 503; anything else is an opaque 500.
func storeError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return apperror.Unavailable("Service temporarily unavailable. Please try again.", err)
	}
	return apperror.Internal(err)
}
