package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/srgjo27/trip_planner/internal/platform/failure"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
}

// WithJSON sends a response containing a JSON object
func WithJSON(w http.ResponseWriter, code int, payload any) {
	respond(w, code, Data[any]{Data: &payload})
}

// WithError sends a response with an error message. Internal errors keep
// their detail out of the body.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	errMsg := err.Error()
	if code == http.StatusInternalServerError {
		errMsg = "internal server error"
	}

	respond(w, code, Error{Error: &errMsg})
}

// WithUserError is WithError plus a message meant for display to the user.
func WithUserError(w http.ResponseWriter, err error, message string) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	respond(w, code, Error{Error: &errMsg, Message: &message})
}

func respond(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
