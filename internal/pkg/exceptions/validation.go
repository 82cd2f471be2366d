package exceptions

import (
	"errors"
	"strings"

	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first field failure of a
// validator.ValidationErrors into a client-facing message, e.g.
// "email must be a valid email address".
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	fieldErr := validationErrors[0]
	message, ok := constvars.CustomValidationErrorMessages[fieldErr.Tag()]
	if !ok {
		message = "is invalid"
	}

	if constvars.TagsWithParams[fieldErr.Tag()] {
		param := fieldErr.Param()
		if fieldErr.Tag() == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		message = strings.Replace(message, "%s", param, 1)
	}
	return strings.ToLower(fieldErr.Field()) + " " + message
}
