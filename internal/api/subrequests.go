package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/internal/config"
	"github.com/eastgate-centre/shift-cover/pkg/core/subrequest"
	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
	"github.com/eastgate-centre/shift-cover/pkg/notify"
)

// SubRequestsHandler serves the substitute request lifecycle endpoints
type SubRequestsHandler struct {
	store    db.SubRequestStore
	notifier notify.Notifier
	ident    identity.Provider
	cfg      *config.Config
	logger   *zap.Logger
}

// NewSubRequestsHandler creates the substitute request handler
func NewSubRequestsHandler(store db.SubRequestStore, notifier notify.Notifier, ident identity.Provider, cfg *config.Config, logger *zap.Logger) *SubRequestsHandler {
	return &SubRequestsHandler{store: store, notifier: notifier, ident: ident, cfg: cfg, logger: logger}
}

type createSubRequestBody struct {
	ShiftID            string  `json:"shiftId"`
	ShiftRecurrenceID  string  `json:"shiftRecurrenceId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Type               string  `json:"type"`
	Notes              string  `json:"notes,omitempty"`
	NominatedSubUserID *string `json:"nominatedSubUserId,omitempty"`
}

type createSubRequestResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Create handles POST /v1/sub-requests
func (h *SubRequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createSubRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	req, err := subrequest.Create(r.Context(), h.store, h.ident, h.cfg, h.logger, subrequest.CreateInput{
		ShiftID:            body.ShiftID,
		ShiftRecurrenceID:  body.ShiftRecurrenceID,
		Date:               body.Date,
		StartTime:          body.StartTime,
		EndTime:            body.EndTime,
		Type:               db.RequestType(body.Type),
		Notes:              body.Notes,
		NominatedSubUserID: body.NominatedSubUserID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, createSubRequestResponse{Success: true, ID: req.ID}, http.StatusCreated)
}

// Cancel handles POST /v1/sub-requests/{id}/cancel
func (h *SubRequestsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	if err := subrequest.Cancel(r.Context(), h.store, h.ident, h.logger, requestID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

// CancelNomination handles POST /v1/sub-requests/{id}/cancel-nomination
func (h *SubRequestsHandler) CancelNomination(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	if err := subrequest.CancelNomination(r.Context(), h.store, h.ident, h.logger, requestID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

// AcceptNomination handles POST /v1/sub-requests/{id}/accept-nomination
func (h *SubRequestsHandler) AcceptNomination(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	if err := subrequest.AcceptNomination(r.Context(), h.store, h.notifier, h.ident, h.logger, requestID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

type subRequestView struct {
	ID                 string  `json:"id"`
	ShiftID            string  `json:"shiftId"`
	ShiftRecurrenceID  string  `json:"shiftRecurrenceId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Type               string  `json:"type"`
	Status             string  `json:"status"`
	NominatedSubUserID *string `json:"nominatedSubUserId,omitempty"`
	HasNominatedSub    bool    `json:"hasNominatedSub"`
	Notes              string  `json:"notes,omitempty"`
}

// ListMine handles GET /v1/sub-requests, returning the actor's own requests
func (h *SubRequestsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := h.ident.CurrentActor(r.Context())
	if actor == nil {
		writeDomainError(w, subrequest.ErrUnauthorized)
		return
	}

	requests, err := h.store.ListSubRequestsByUser(r.Context(), actor.ID)
	if err != nil {
		h.logger.Error("Failed to list sub requests", zap.Error(err))
		writeDomainError(w, err)
		return
	}

	views := make([]subRequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, subRequestView{
			ID:                 req.ID,
			ShiftID:            req.ShiftID,
			ShiftRecurrenceID:  req.ShiftRecurrenceID,
			Date:               req.Date,
			StartTime:          req.StartTime,
			EndTime:            req.EndTime,
			Type:               string(req.Type),
			Status:             string(req.Status),
			NominatedSubUserID: req.NominatedSubUserID,
			HasNominatedSub:    req.HasNominatedSub,
			Notes:              req.Notes,
		})
	}

	writeJSON(w, views, http.StatusOK)
}
