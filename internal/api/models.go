package api

import (
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	AssignedToUserID int64  `json:"assigned_to_user_id" validate:"required,gt=0"`
}

// UserResponse is the representation of a user returned by the API.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskResponse is the representation of a task returned by the API.
// AssignedToUser is populated on list endpoints that join user data.
type TaskResponse struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	AssignedToUserID int64         `json:"assigned_to_user_id"`
	IsCompleted      bool          `json:"is_completed"`
	CreatedAt        time.Time     `json:"created_at"`
	AssignedToUser   *UserResponse `json:"assigned_to_user,omitempty"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func newUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

func newTaskResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		AssignedToUserID: task.AssignedToUserID,
		IsCompleted:      task.IsCompleted,
		CreatedAt:        task.CreatedAt,
	}
	if task.AssignedToUser != nil {
		user := newUserResponse(task.AssignedToUser)
		resp.AssignedToUser = &user
	}
	return resp
}

func newTaskResponses(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResponse(t))
	}
	return out
}
