package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (ErrUserNotFound, ErrTaskNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when a write points a foreign key at
	// a row that does not exist.
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// Entity-specific constraint errors

	// ErrEmailExists indicates that a user with the given email already exists.
	// This is returned when the users email unique constraint rejects an insert.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrAssigneeNotFound indicates that a task's assignee does not reference
	// an existing user. This is returned when the tasks assignee foreign key
	// rejects an insert.
	ErrAssigneeNotFound = fmt.Errorf("%w: assigned user", ErrInvalidReference)
)

// IsNotFound checks if the error is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate checks if the error is any kind of "duplicate" error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
