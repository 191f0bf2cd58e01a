package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// ServiceError wraps unexpected failures from a service operation with
// context. Known sentinel errors (validation, not found, duplicates,
// bad references) are never wrapped in a ServiceError; they pass through
// so callers can match them with errors.Is.
type ServiceError struct {
	// Service is the service that failed (e.g., "user_service")
	Service string
	// Operation is the operation that failed (e.g., "create", "complete")
	Operation string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapServiceError wraps err with service/operation context unless it is one
// of the recoverable-by-caller conditions, which must stay matchable.
func wrapServiceError(service, operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, store.ErrDuplicate) ||
		errors.Is(err, store.ErrInvalidReference) {
		return err
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}
