package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore implements store.TaskStore for testing.
type TaskStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, task *domain.Task) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn       func(ctx context.Context) ([]*domain.Task, error)
	ListByUserFn func(ctx context.Context, userID int64) ([]*domain.Task, error)
	UpdateFn     func(ctx context.Context, task *domain.Task) error

	// In-memory state for the default implementation. Users, when set,
	// backs the foreign-key check on create and the join on List.
	Tasks  map[int64]*domain.Task
	Users  *UserStore
	NextID int64

	// Write counters so tests can assert the single-write rule.
	CreateCalls int
	UpdateCalls int
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new mock store with initialized defaults.
// users may be nil, in which case the assignee check is skipped. When users
// is set the two stores are linked both ways, so deleting a user cascades
// to their tasks.
func NewTaskStore(users *UserStore) *TaskStore {
	ts := &TaskStore{
		Tasks:  make(map[int64]*domain.Task),
		Users:  users,
		NextID: 1,
	}
	if users != nil {
		users.Tasks = ts
	}
	return ts
}

// Create implements the TaskStore interface. The default behavior enforces
// the assignee foreign key the way the real store's constraint does.
func (m *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.CreateCalls++

	if m.Users != nil {
		if _, ok := m.Users.Users[task.AssignedToUserID]; !ok {
			return store.ErrAssigneeNotFound
		}
	}

	task.ID = m.NextID
	m.NextID++
	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the TaskStore interface.
func (m *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// List implements the TaskStore interface, populating AssignedToUser when
// a user store is attached.
func (m *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for id := int64(1); id < m.NextID; id++ {
		task, ok := m.Tasks[id]
		if !ok {
			continue
		}
		if m.Users != nil {
			task.AssignedToUser = m.Users.Users[task.AssignedToUserID]
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// ListByUser implements the TaskStore interface.
func (m *TaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	tasks := make([]*domain.Task, 0)
	for id := int64(1); id < m.NextID; id++ {
		if task, ok := m.Tasks[id]; ok && task.AssignedToUserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Update implements the TaskStore interface.
func (m *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	m.UpdateCalls++

	if _, ok := m.Tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}
