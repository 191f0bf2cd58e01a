package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It inserts the task and scans the assigned ID back into the entity.
// The foreign key on assigned_to_user_id is the authoritative assignee
// check; a violation surfaces as store.ErrAssigneeNotFound.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO tasks (title, description, assigned_to_user_id, is_completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.AssignedToUserID,
		task.IsCompleted,
		task.CreatedAt,
	).Scan(&task.ID)
	if err != nil {
		mapped := MapError(err)
		if IsForeignKeyViolation(err) {
			log.Warn("assignee does not exist during task creation",
				slog.Int64("assigned_to_user_id", task.AssignedToUserID))
		} else {
			log.Error("failed to create task",
				slog.String("error", err.Error()))
		}
		return mapped
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("assigned_to_user_id", task.AssignedToUserID))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, assigned_to_user_id, is_completed, created_at
		FROM tasks
		WHERE id = $1
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.AssignedToUserID,
		&task.IsCompleted,
		&task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}

	return &task, nil
}

// List implements store.TaskStore.List
// Each task carries its resolved AssignedToUser (read-time join).
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to_user_id, t.is_completed, t.created_at,
		       u.id, u.name, u.email, u.created_at
		FROM tasks t
		JOIN users u ON u.id = t.assigned_to_user_id
		ORDER BY t.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		var user domain.User
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.AssignedToUserID,
			&task.IsCompleted,
			&task.CreatedAt,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.CreatedAt,
		); err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		task.AssignedToUser = &user
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ListByUser implements store.TaskStore.ListByUser
// An unknown user yields an empty slice, not an error.
func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, assigned_to_user_id, is_completed, created_at
		FROM tasks
		WHERE assigned_to_user_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list tasks by user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.AssignedToUserID,
			&task.IsCompleted,
			&task.CreatedAt,
		); err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
// Only mutable fields are written; created_at never changes after insert.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, assigned_to_user_id = $3, is_completed = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.AssignedToUserID,
		task.IsCompleted,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return MapError(err)
	}

	return checkRowsAffected(result, store.ErrTaskNotFound)
}
