package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// The store's foreign key is the authoritative assignee check; Create
	// returns ErrAssigneeNotFound if the assigned user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns all tasks with their AssignedToUser reference populated.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListByUser returns the tasks assigned to the given user. An unknown
	// user yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Update persists changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error
}
