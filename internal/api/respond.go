package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eastgate-centre/shift-cover/pkg/core/subrequest"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDomainError translates the core error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a store-level failure and surfaces as 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, subrequest.ErrUnauthorized):
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusUnauthorized)
	case errors.Is(err, subrequest.ErrForbidden):
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusForbidden)
	case errors.Is(err, subrequest.ErrNotFound):
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusNotFound)
	case errors.Is(err, subrequest.ErrInvalidInput):
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
	case errors.Is(err, subrequest.ErrNoActiveNomination),
		errors.Is(err, subrequest.ErrNotCancellable),
		errors.Is(err, subrequest.ErrNotAcceptable),
		errors.Is(err, subrequest.ErrInvalidTimeRange):
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusUnprocessableEntity)
	default:
		writeJSON(w, errorResponse{Error: "internal error"}, http.StatusInternalServerError)
	}
}
