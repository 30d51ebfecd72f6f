package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the boundary-facing projection of an error.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP maps any error to what the transport layer should send. Errors that
// are not AppErrors are collapsed to an opaque 500 so internals never leak
// to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
