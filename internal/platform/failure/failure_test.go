package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/srgjo27/trip_planner/internal/platform/failure"
	"github.com/stretchr/testify/assert"
)

var errCause = errors.New("cause")

func TestFailure_Constructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errCause), code: http.StatusBadRequest},
		{name: "NotFound", err: failure.NotFound(errCause), code: http.StatusNotFound},
		{name: "Unprocessable", err: failure.Unprocessable(errCause), code: http.StatusUnprocessableEntity},
		{name: "InternalError", err: failure.InternalError(errCause), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, "cause", tt.err.Error())
			assert.ErrorIs(t, tt.err, errCause)
		})
	}
}

func TestFailure_NilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode_WrappedAndPlain(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", failure.NotFound(errCause))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.BadRequestFromString("bad")))
}
