package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
// Panics if userService is nil, as this indicates a programming error.
func NewUserHandler(userService service.UserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// Create handles POST /api/users.
// Responds 201 with the created user, 400 on validation failure, and 409
// when the email is already registered.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(ctx, w, r, http.StatusBadRequest, "invalid request body", err, nil)
		return
	}

	if err := validateRequest(h.validate, req); err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	user, err := h.userService.Create(ctx, req.Name, req.Email)
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	log.Info("user created", "user_id", user.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	shared.RespondWithJSON(w, http.StatusCreated, newUserResponse(user))
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, newUserResponses(users))
}

// Delete handles DELETE /api/users/{userID}.
// Deleting a user also removes their tasks via the cascading foreign key.
// Responds 204 on success and 404 when the user does not exist.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	userID, err := parseIDParam(r, "userID")
	if err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	if err := h.userService.Delete(ctx, userID); err != nil {
		HandleServiceError(ctx, w, r, err)
		return
	}

	log.Info("user deleted", "user_id", userID)
	shared.RespondWithJSON(w, http.StatusNoContent, nil)
}

// parseIDParam extracts a positive int64 path parameter from the request.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("parsing %s %q: %w", name, raw, domain.ErrInvalidID)
	}
	return id, nil
}
