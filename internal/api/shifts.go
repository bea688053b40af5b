package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/core/availability"
	"github.com/eastgate-centre/shift-cover/pkg/core/shifts"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
)

// ShiftsHandler serves the shift catalogue endpoints
type ShiftsHandler struct {
	shiftStore shifts.Store
	availStore availability.SuggestStore
	ident      identity.Provider
	logger     *zap.Logger
}

// NewShiftsHandler creates the shifts handler
func NewShiftsHandler(shiftStore shifts.Store, availStore availability.SuggestStore, ident identity.Provider, logger *zap.Logger) *ShiftsHandler {
	return &ShiftsHandler{shiftStore: shiftStore, availStore: availStore, ident: ident, logger: logger}
}

type occurrenceView struct {
	ShiftID           string `json:"shiftId"`
	ShiftRecurrenceID string `json:"shiftRecurrenceId"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
}

// Occurrences handles GET /v1/shifts/{id}/occurrences?from=...&until=...
// Dates default to the next eight weeks.
func (h *ShiftsHandler) Occurrences(w http.ResponseWriter, r *http.Request) {
	shiftID := mux.Vars(r)["id"]

	from := time.Now().Truncate(24 * time.Hour)
	until := from.AddDate(0, 0, 56)

	q := r.URL.Query()
	if s := q.Get("from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeJSON(w, errorResponse{Error: "invalid from date"}, http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if s := q.Get("until"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeJSON(w, errorResponse{Error: "invalid until date"}, http.StatusBadRequest)
			return
		}
		until = parsed
	}

	occurrences, err := shifts.ListOccurrences(r.Context(), h.shiftStore, h.logger, shiftID, from, until)
	if err != nil {
		h.logger.Error("Failed to list shift occurrences", zap.Error(err))
		writeDomainError(w, err)
		return
	}

	views := make([]occurrenceView, 0, len(occurrences))
	for _, o := range occurrences {
		views = append(views, occurrenceView(o))
	}

	writeJSON(w, views, http.StatusOK)
}

type candidateView struct {
	WorkerID   string `json:"workerId"`
	WorkerName string `json:"workerName"`
	Score      int    `json:"score"`
}

// Candidates handles GET /v1/shifts/{id}/candidates?recurrenceId=...
// It ranks workers willing to cover the given occurrence, excluding the
// caller, best candidate first.
func (h *ShiftsHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	shiftID := mux.Vars(r)["id"]
	recurrenceID := r.URL.Query().Get("recurrenceId")
	if recurrenceID == "" {
		writeJSON(w, errorResponse{Error: "recurrenceId is required"}, http.StatusBadRequest)
		return
	}

	var excludeWorkerID string
	if actor := h.ident.CurrentActor(r.Context()); actor != nil {
		excludeWorkerID = actor.ID
	}

	candidates, err := availability.SuggestSubstitutes(r.Context(), h.availStore, h.logger, shiftID, recurrenceID, excludeWorkerID)
	if err != nil {
		h.logger.Error("Failed to rank candidates", zap.Error(err))
		writeDomainError(w, err)
		return
	}

	views := make([]candidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, candidateView{
			WorkerID:   c.Worker.ID,
			WorkerName: c.Worker.FirstName + " " + c.Worker.LastName,
			Score:      c.Score,
		})
	}

	writeJSON(w, views, http.StatusOK)
}
