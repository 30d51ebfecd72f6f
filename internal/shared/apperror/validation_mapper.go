package apperror

import (
	"github.com/go-playground/validator/v10"
)

// MapValidationError turns a gin binding error into an AppError. Only the
// first failing field is reported; the field name comes through as the json
// tag name thanks to Init. Anything that is not a validator error (malformed
// JSON, wrong field types) maps to the generic invalid-input error.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]

		switch e.Tag() {
		case "required":
			return RequiredField(e.Field())
		default:
			return InvalidField(e.Field())
		}
	}

	return ErrInvalidInput
}
