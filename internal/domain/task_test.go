package domain_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask("Test Task", "some details", 1)
		require.NoError(t, err)
		require.NotNil(t, task)

		assert.Equal(t, int64(0), task.ID)
		assert.Equal(t, "Test Task", task.Title)
		assert.Equal(t, "some details", task.Description)
		assert.Equal(t, int64(1), task.AssignedToUserID)
		assert.False(t, task.IsCompleted, "new tasks start incomplete")
		assert.False(t, task.CreatedAt.IsZero())
		assert.Nil(t, task.AssignedToUser)
	})

	t.Run("description is optional", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask("Test Task", "", 1)
		require.NoError(t, err)
		assert.Empty(t, task.Description)
	})

	tests := []struct {
		name       string
		title      string
		assignedTo int64
		wantField  string
	}{
		{
			name:       "empty title",
			title:      "",
			assignedTo: 1,
			wantField:  "title",
		},
		{
			name:       "whitespace-only title",
			title:      "   ",
			assignedTo: 1,
			wantField:  "title",
		},
		{
			name:       "zero assignee",
			title:      "Test Task",
			assignedTo: 0,
			wantField:  "assigned_to_user_id",
		},
		{
			name:       "negative assignee",
			title:      "Test Task",
			assignedTo: -5,
			wantField:  "assigned_to_user_id",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tt.title, "", tt.assignedTo)
			require.Error(t, err)
			assert.Nil(t, task)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))

			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			assert.True(t, found, "expected a violation on field %q, got %v", tt.wantField, verr.Fields)
		})
	}
}

func TestTask_Complete(t *testing.T) {
	t.Parallel()

	task, err := domain.NewTask("Test Task", "", 1)
	require.NoError(t, err)

	task.Complete()
	assert.True(t, task.IsCompleted)

	// Completing again is a no-op.
	task.Complete()
	assert.True(t, task.IsCompleted)
}
