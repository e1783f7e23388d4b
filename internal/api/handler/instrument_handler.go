package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blaisecz/questionnaire-report/internal/api/validation"
	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
	"github.com/blaisecz/questionnaire-report/internal/service"
	"github.com/blaisecz/questionnaire-report/pkg/problem"
)

type InstrumentHandler struct {
	instruments service.InstrumentService
	reports     service.ReportService
}

func NewInstrumentHandler(instruments service.InstrumentService, reports service.ReportService) *InstrumentHandler {
	return &InstrumentHandler{instruments: instruments, reports: reports}
}

// List handles GET /v1/instruments
// @Summary List instruments
// @Description List the questionnaire instruments the engine can score, in catalog order.
// @Tags instruments
// @Produce json
// @Success 200 {array} domain.InstrumentSummary "Instrument catalog"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /instruments [get]
func (h *InstrumentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.instruments.List(r.Context())
	if err != nil {
		writeProblem(w, r, problem.InternalError("Failed to list instruments"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GetByID handles GET /v1/instruments/{instrumentId}
// @Summary Get instrument
// @Description Get the full definition of an instrument: scales, labels and questions.
// @Tags instruments
// @Produce json
// @Param instrumentId path string true "Instrument ID" example(PSQI)
// @Success 200 {object} scoring.Instrument "Instrument definition"
// @Failure 404 {object} problem.Problem "Instrument not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /instruments/{instrumentId} [get]
func (h *InstrumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "instrumentId")

	def, err := h.instruments.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, r, problem.NotFound("Instrument not found"))
			return
		}
		writeProblem(w, r, problem.InternalError("Failed to get instrument"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(def)
}

// Score handles POST /v1/instruments/{instrumentId}/score
// @Summary Score answers
// @Description Score one instrument's answers. Ranges such as "6-7" are collapsed to their midpoint and PSQI clock answers are parsed as HH:MM.
// @Tags instruments
// @Accept json
// @Produce json
// @Param instrumentId path string true "Instrument ID" example(WHO5)
// @Param request body domain.ScoreRequest true "Raw answers"
// @Success 200 {object} domain.ScoreResponse "Scores"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "Instrument not found"
// @Failure 422 {object} problem.Problem "Answers missing, malformed or out of range"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /instruments/{instrumentId}/score [post]
func (h *InstrumentHandler) Score(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "instrumentId")

	var req domain.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, r, problem.BadRequest("Invalid JSON body"))
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		writeProblem(w, r, problem.ValidationError("Request body contains invalid fields", fieldErrors))
		return
	}

	resp, err := h.reports.Score(r.Context(), id, scoring.Answers(req.Answers))
	if err != nil {
		writeProblem(w, r, scoringProblem(err, "Failed to score answers"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
