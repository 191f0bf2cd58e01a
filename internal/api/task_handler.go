package api

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validate    *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
// Panics if taskService is nil, as this indicates a programming error.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	if taskService == nil {
		panic("taskService cannot be nil")
	}
	return &TaskHandler{
		taskService: taskService,
		validate:    validator.New(),
	}
}

// Create handles POST /api/tasks.
// Responds 201 with the created task, 400 on validation failure or when the
// assigned user does not exist.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(ctx, w, r, http.StatusBadRequest, "invalid request body", err, nil)
		return
	}

	if err := validateRequest(h.validate, req); err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	task, err := h.taskService.Create(ctx, req.Title, req.Description, req.AssignedToUserID)
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	log.Info("task created", "task_id", task.ID, "assigned_to_user_id", task.AssignedToUserID)
	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	shared.RespondWithJSON(w, http.StatusCreated, newTaskResponse(task))
}

// List handles GET /api/tasks. Each task includes its assigned user.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.taskService.List(ctx)
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, newTaskResponses(tasks))
}

// ListByUser handles GET /api/tasks/user/{userID}.
// A user with no tasks (including an unknown user ID) gets an empty list.
// IDs that can never exist (non-numeric, zero, negative) are rejected with
// 400 before the lookup rather than treated as empty.
func (h *TaskHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := parseIDParam(r, "userID")
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	tasks, err := h.taskService.ListByUser(ctx, userID)
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, newTaskResponses(tasks))
}

// Complete handles PUT /api/tasks/{taskID}/complete.
// Completion is idempotent: completing an already-completed task succeeds.
// Responds 204 on success and 404 when the task does not exist.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	taskID, err := parseIDParam(r, "taskID")
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	if err := h.taskService.Complete(ctx, taskID); err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	log.Info("task completed", "task_id", taskID)
	shared.RespondWithJSON(w, http.StatusNoContent, nil)
}
