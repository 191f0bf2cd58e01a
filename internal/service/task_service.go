package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskService provides task-related operations.
type TaskService interface {
	// Create validates and persists a new task assigned to a user.
	// Returns a *domain.ValidationError if a field rule fails, or
	// store.ErrAssigneeNotFound if the assigned user does not exist.
	Create(ctx context.Context, title, description string, assignedToUserID int64) (*domain.Task, error)

	// List returns all tasks with their AssignedToUser reference populated.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListByUser returns the tasks assigned to the given user. An unknown
	// user yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Complete marks a task as completed. The operation is idempotent:
	// completing an already-completed task succeeds and re-persists the
	// same state. Returns store.ErrTaskNotFound if the task does not exist.
	Complete(ctx context.Context, taskID int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// Create implements TaskService.Create
// The store's foreign key is the authoritative assignee check; no advisory
// existence query runs beforehand (see UserService.Create for the rationale).
func (s *taskServiceImpl) Create(ctx context.Context, title, description string, assignedToUserID int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description, assignedToUserID)
	if err != nil {
		log.Debug("task candidate failed validation",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, wrapServiceError("task_service", "create", err)
	}

	return task, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, wrapServiceError("task_service", "list", err)
	}
	return tasks, nil
}

// ListByUser implements TaskService.ListByUser
func (s *taskServiceImpl) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, wrapServiceError("task_service", "list_by_user", err)
	}
	return tasks, nil
}

// Complete implements TaskService.Complete
func (s *taskServiceImpl) Complete(ctx context.Context, taskID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return wrapServiceError("task_service", "complete", err)
	}

	task.Complete()

	if err := s.taskStore.Update(ctx, task); err != nil {
		return wrapServiceError("task_service", "complete", err)
	}

	log.Info("task completed", slog.Int64("task_id", taskID))
	return nil
}
