package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// UserService provides user-related operations.
type UserService interface {
	// Create validates and persists a new user.
	// Returns a *domain.ValidationError if a field rule fails, or
	// store.ErrEmailExists if the email is already taken.
	Create(ctx context.Context, name, email string) (*domain.User, error)

	// List returns all persisted users.
	List(ctx context.Context) ([]*domain.User, error)

	// Delete removes a user and, via the store's cascade, their tasks.
	// Returns store.ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Create implements UserService.Create
// The store's unique constraint is the authoritative duplicate-email check;
// no advisory existence query runs beforehand, so there is no window for
// two concurrent creates to both pass a pre-check.
func (s *userServiceImpl) Create(ctx context.Context, name, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email)
	if err != nil {
		log.Debug("user candidate failed validation",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, wrapServiceError("user_service", "create", err)
	}

	return user, nil
}

// List implements UserService.List
func (s *userServiceImpl) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, wrapServiceError("user_service", "list", err)
	}
	return users, nil
}

// Delete implements UserService.Delete
func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id <= 0 {
		return domain.NewValidationError("id", "must be greater than zero")
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return wrapServiceError("user_service", "delete", err)
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	return nil
}
