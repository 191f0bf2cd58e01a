package api

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// validateRequest runs struct-tag validation on a decoded request body and
// translates any violations into a domain.ValidationError so handlers can
// render per-field messages the same way domain validation does.
func validateRequest(validate *validator.Validate, req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	verr := &domain.ValidationError{}
	for _, fe := range validationErrs {
		verr.Add(fieldName(fe), fieldMessage(fe))
	}
	return verr
}

// fieldName converts the Go struct field name to its JSON wire name.
func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "AssignedToUserID":
		return "assigned_to_user_id"
	default:
		return strings.ToLower(fe.Field())
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
