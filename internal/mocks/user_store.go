package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// UserStore implements store.UserStore for testing.
type UserStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, user *domain.User) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	ListFn    func(ctx context.Context) ([]*domain.User, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// In-memory state for the default implementation
	Users  map[int64]*domain.User
	NextID int64

	// Tasks, when linked via NewTaskStore, receives the cascade on Delete
	// the way the real store's ON DELETE CASCADE foreign key does.
	Tasks *TaskStore

	// CreateCalls counts writes so tests can assert the single-write rule.
	CreateCalls int
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a new mock store with initialized defaults.
func NewUserStore() *UserStore {
	return &UserStore{
		Users:  make(map[int64]*domain.User),
		NextID: 1,
	}
}

// Create implements the UserStore interface. The default behavior enforces
// email uniqueness the way the real store's constraint does.
func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.CreateCalls++

	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// List implements the UserStore interface.
func (m *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	users := make([]*domain.User, 0, len(m.Users))
	for id := int64(1); id < m.NextID; id++ {
		if user, ok := m.Users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

// Delete implements the UserStore interface.
func (m *UserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)

	if m.Tasks != nil {
		for taskID, task := range m.Tasks.Tasks {
			if task.AssignedToUserID == id {
				delete(m.Tasks.Tasks, taskID)
			}
		}
	}
	return nil
}
