package core

import (
	"eoexstore/internal/repository"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrValidation     error = errors.New("validation failed")
	ErrConflict       error = errors.New("already exists")
	ErrAuth           error = errors.New("authentication failed")
	ErrForbidden      error = fmt.Errorf("%w: insufficient role", ErrAuth)
	ErrNotFound       error = errors.New("not found")
	ErrStorageTimeout error = errors.New("storage timed out, retry later")
	ErrStorage        error = errors.New("storage unavailable, retry later")
)

// storageFailure logs the underlying repository error and returns a sentinel that
// carries no storage details.
func storageFailure(logs *zap.SugaredLogger, operation string, err error) error {
	logs.Errorw("storage operation failed", "operation", operation, "error", err)

	if errors.Is(err, repository.ErrTimeout) {
		return ErrStorageTimeout
	}
	return ErrStorage
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
