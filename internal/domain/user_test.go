package domain_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("John Doe", "john.doe@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, int64(0), user.ID, "ID is assigned by the store, not the constructor")
		assert.Equal(t, "John Doe", user.Name)
		assert.Equal(t, "john.doe@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("  John Doe  ", " john.doe@example.com ")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", user.Name)
		assert.Equal(t, "john.doe@example.com", user.Email)
	})

	tests := []struct {
		name      string
		userName  string
		email     string
		wantField string
	}{
		{
			name:      "empty name",
			userName:  "",
			email:     "john.doe@example.com",
			wantField: "name",
		},
		{
			name:      "whitespace-only name",
			userName:  "   ",
			email:     "john.doe@example.com",
			wantField: "name",
		},
		{
			name:      "empty email",
			userName:  "John Doe",
			email:     "",
			wantField: "email",
		},
		{
			name:      "email without at sign",
			userName:  "John Doe",
			email:     "john.doe.example.com",
			wantField: "email",
		},
		{
			name:      "email without domain",
			userName:  "John Doe",
			email:     "john.doe@",
			wantField: "email",
		},
		{
			name:      "email with display name form",
			userName:  "John Doe",
			email:     "John <john.doe@example.com>",
			wantField: "email",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := domain.NewUser(tt.userName, tt.email)
			require.Error(t, err)
			assert.Nil(t, user)
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

	t.Run("reports all violations at once", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewUser("", "not-an-email")
		require.Error(t, err)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 2)
	})
}
