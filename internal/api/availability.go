package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/core/availability"
	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
)

// AvailabilityHandler serves the worker availability endpoints
type AvailabilityHandler struct {
	store  db.AvailabilityStore
	ident  identity.Provider
	logger *zap.Logger
}

// NewAvailabilityHandler creates the availability handler
func NewAvailabilityHandler(store db.AvailabilityStore, ident identity.Provider, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{store: store, ident: ident, logger: logger}
}

type setAvailabilityBody struct {
	ShiftID           string  `json:"shiftId"`
	ShiftRecurrenceID *string `json:"shiftRecurrenceId,omitempty"`
	Level             string  `json:"level"`
}

// Set handles PUT /v1/availability
func (h *AvailabilityHandler) Set(w http.ResponseWriter, r *http.Request) {
	var body setAvailabilityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	err := availability.SetAvailability(r.Context(), h.store, h.ident, h.logger, availability.SetInput{
		ShiftID:           body.ShiftID,
		ShiftRecurrenceID: body.ShiftRecurrenceID,
		Level:             db.AvailabilityLevel(body.Level),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

type clearAvailabilityBody struct {
	ShiftID           string  `json:"shiftId"`
	ShiftRecurrenceID *string `json:"shiftRecurrenceId,omitempty"`
}

// Clear handles DELETE /v1/availability
func (h *AvailabilityHandler) Clear(w http.ResponseWriter, r *http.Request) {
	var body clearAvailabilityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	err := availability.ClearAvailability(r.Context(), h.store, h.ident, h.logger, availability.ClearInput{
		ShiftID:           body.ShiftID,
		ShiftRecurrenceID: body.ShiftRecurrenceID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
