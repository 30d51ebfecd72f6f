package employeeerrors

import (
	"go-staff/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidIDFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid ID format. ID must be a number.",
		http.StatusBadRequest,
	)
	ErrEmptyName = apperror.New(
		apperror.CodeInvalidInput,
		"name cannot be empty",
		http.StatusBadRequest,
	)
	ErrInvalidAge = apperror.New(
		apperror.CodeInvalidInput,
		"Age must be between 5 and 95 years",
		http.StatusBadRequest,
	)
	ErrIDTooSmall = apperror.New(
		apperror.CodeInvalidInput,
		"ID must be at least 1",
		http.StatusBadRequest,
	)
	ErrIDNotWhole = apperror.New(
		apperror.CodeInvalidInput,
		"id must be a whole number",
		http.StatusBadRequest,
	)
)

// DuplicateEmployeeID reports a create that supplied an id already in use.
func DuplicateEmployeeID(id int64) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeConflict,
		http.StatusConflict,
		"Employee with ID %d already exists", id,
	)
}
