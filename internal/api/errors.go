package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MapErrorToStatusCode translates service and store errors into HTTP status
// codes. Not-found errors become 404, uniqueness conflicts 409, validation
// failures and bad entity references 400. Anything unrecognized is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Internal
// errors are collapsed to a generic message so details never leak.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "task not found"
	case errors.Is(err, store.ErrNotFound):
		return "resource not found"
	case errors.Is(err, store.ErrEmailExists):
		return "a user with this email already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "resource already exists"
	case errors.Is(err, store.ErrAssigneeNotFound):
		return "assigned user does not exist"
	case errors.Is(err, domain.ErrValidation):
		return "validation failed"
	case errors.Is(err, domain.ErrInvalidID):
		return "invalid identifier"
	default:
		return "an internal error occurred"
	}
}

// HandleServiceError writes the appropriate error response for an error
// returned by the service layer, logging the underlying cause. Validation
// errors carry their per-field details into the response body.
func HandleServiceError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var fields []domain.FieldError
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		fields = validationErr.Fields
	}

	shared.RespondWithErrorAndLog(ctx, w, r, status, message, err, fields)
}
