package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTaskFixture returns a task service whose store knows one user,
// alongside the backing mocks.
func newTaskFixture(t *testing.T) (service.TaskService, *mocks.TaskStore, *domain.User) {
	t.Helper()

	userStore := mocks.NewUserStore()
	userSvc := service.NewUserService(userStore, testLogger())

	user, err := userSvc.Create(context.Background(), "John Doe", "john.doe@example.com")
	require.NoError(t, err)

	taskStore := mocks.NewTaskStore(userStore)
	return service.NewTaskService(taskStore, testLogger()), taskStore, user
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	t.Run("valid task starts incomplete with an assigned ID", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, user := newTaskFixture(t)

		task, err := svc.Create(context.Background(), "Test Task", "details", user.ID)
		require.NoError(t, err)
		require.NotNil(t, task)

		assert.NotZero(t, task.ID)
		assert.False(t, task.IsCompleted)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Equal(t, 1, taskStore.CreateCalls, "create performs exactly one write")
	})

	t.Run("unknown assignee fails with reference error and adds no row", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, _ := newTaskFixture(t)

		task, err := svc.Create(context.Background(), "Test Task", "", 999)
		require.Error(t, err)
		assert.Nil(t, task)
		assert.True(t, errors.Is(err, store.ErrAssigneeNotFound))
		assert.Empty(t, taskStore.Tasks)
	})

	t.Run("invalid candidate fails validation and never reaches the store", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			title      string
			assignedTo int64
		}{
			{name: "empty title", title: "", assignedTo: 1},
			{name: "zero assignee", title: "Test Task", assignedTo: 0},
			{name: "negative assignee", title: "Test Task", assignedTo: -1},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				svc, taskStore, _ := newTaskFixture(t)

				_, err := svc.Create(context.Background(), tt.title, "", tt.assignedTo)
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrValidation))
				assert.Zero(t, taskStore.CreateCalls)
			})
		}
	})
}

func TestTaskService_List(t *testing.T) {
	t.Parallel()

	svc, _, user := newTaskFixture(t)

	_, err := svc.Create(context.Background(), "First", "", user.ID)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Second", "", user.ID)
	require.NoError(t, err)

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	for _, task := range tasks {
		require.NotNil(t, task.AssignedToUser, "list resolves the assignee")
		assert.Equal(t, user.ID, task.AssignedToUser.ID)
	}
}

func TestTaskService_ListByUser(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewUserStore()
	userSvc := service.NewUserService(userStore, testLogger())

	john, err := userSvc.Create(context.Background(), "John Doe", "john.doe@example.com")
	require.NoError(t, err)
	jane, err := userSvc.Create(context.Background(), "Jane Doe", "jane.doe@example.com")
	require.NoError(t, err)

	svc := service.NewTaskService(mocks.NewTaskStore(userStore), testLogger())

	_, err = svc.Create(context.Background(), "John's task", "", john.ID)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Jane's task", "", jane.ID)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Jane's other task", "", jane.ID)
	require.NoError(t, err)

	t.Run("returns exactly the user's tasks", func(t *testing.T) {
		tasks, err := svc.ListByUser(context.Background(), jane.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		for _, task := range tasks {
			assert.Equal(t, jane.ID, task.AssignedToUserID)
		}
	})

	t.Run("user without tasks yields empty slice", func(t *testing.T) {
		userStoreEmpty := mocks.NewUserStore()
		svcEmpty := service.NewTaskService(mocks.NewTaskStore(userStoreEmpty), testLogger())

		tasks, err := svcEmpty.ListByUser(context.Background(), john.ID)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("unknown user yields empty slice, not an error", func(t *testing.T) {
		tasks, err := svc.ListByUser(context.Background(), 999)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskService_Complete(t *testing.T) {
	t.Parallel()

	t.Run("marks the task completed", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, user := newTaskFixture(t)

		task, err := svc.Create(context.Background(), "Test Task", "", user.ID)
		require.NoError(t, err)
		require.False(t, task.IsCompleted)

		require.NoError(t, svc.Complete(context.Background(), task.ID))
		assert.True(t, taskStore.Tasks[task.ID].IsCompleted)
		assert.Equal(t, 1, taskStore.UpdateCalls, "complete performs exactly one write")
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, user := newTaskFixture(t)

		task, err := svc.Create(context.Background(), "Test Task", "", user.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Complete(context.Background(), task.ID))
		require.NoError(t, svc.Complete(context.Background(), task.ID))

		assert.True(t, taskStore.Tasks[task.ID].IsCompleted)
		assert.Equal(t, 2, taskStore.UpdateCalls, "repeat completion re-persists the same state")
	})

	t.Run("unknown task fails with not found", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTaskFixture(t)

		err := svc.Complete(context.Background(), 999)
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrTaskNotFound))
	})

	t.Run("update failure is wrapped with context", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, user := newTaskFixture(t)

		task, err := svc.Create(context.Background(), "Test Task", "", user.ID)
		require.NoError(t, err)

		taskStore.UpdateFn = func(ctx context.Context, task *domain.Task) error {
			return errors.New("connection reset")
		}

		err = svc.Complete(context.Background(), task.ID)
		require.Error(t, err)

		var svcErr *service.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "task_service", svcErr.Service)
		assert.Equal(t, "complete", svcErr.Operation)
	})
}
