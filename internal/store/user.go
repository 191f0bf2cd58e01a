package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// The store's unique constraint is the authoritative duplicate check;
	// Create returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// List returns all persisted users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)

	// Delete removes a user by ID. The store cascades the delete to the
	// user's tasks. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error
}
