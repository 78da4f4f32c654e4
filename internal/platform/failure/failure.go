package failure

import (
	"errors"
	"net/http"
)

// Failure pairs an error message with the HTTP status it should be reported as.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error so errors.Is still sees domain sentinels.
func (e *Failure) Unwrap() error {
	return e.cause
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func NotFound(err error) error {
	return wrap(http.StatusNotFound, err)
}

func Unprocessable(err error) error {
	return wrap(http.StatusUnprocessableEntity, err)
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
