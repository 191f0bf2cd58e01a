package domain

import (
	"strings"
	"time"
)

// Task represents a unit of work assigned to a user.
//
// AssignedToUser is a read-time join populated by list operations; it is
// never written back to the store and is omitted from JSON when absent.
type Task struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	AssignedToUserID int64     `json:"assigned_to_user_id"`
	IsCompleted      bool      `json:"is_completed"`
	CreatedAt        time.Time `json:"created_at"`

	AssignedToUser *User `json:"assigned_to_user,omitempty"`
}

// NewTask creates a new Task assigned to the given user. The task starts
// incomplete with a server-assigned creation timestamp; the ID is left zero
// for the store to assign on insert.
// Returns a *ValidationError if any field rule fails.
func NewTask(title, description string, assignedToUserID int64) (*Task, error) {
	task := &Task{
		Title:            strings.TrimSpace(title),
		Description:      description,
		AssignedToUserID: assignedToUserID,
		IsCompleted:      false,
		CreatedAt:        time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns a *ValidationError listing every failing field rule.
func (t *Task) Validate() error {
	var verr ValidationError

	if t.Title == "" {
		verr.Add("title", "is required")
	}

	if t.AssignedToUserID <= 0 {
		verr.Add("assigned_to_user_id", "must be greater than zero")
	}

	return verr.ErrOrNil()
}

// Complete marks the task as completed. Completing an already-completed
// task is a no-op; the operation is idempotent.
func (t *Task) Complete() {
	t.IsCompleted = true
}
