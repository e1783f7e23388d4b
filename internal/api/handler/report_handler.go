package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blaisecz/questionnaire-report/internal/api/validation"
	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/service"
	"github.com/blaisecz/questionnaire-report/pkg/problem"
)

type ReportHandler struct {
	service service.ReportService
	strict  bool
}

// NewReportHandler creates a ReportHandler. strict is the default mode
// used when a request does not set the strict query parameter.
func NewReportHandler(service service.ReportService, strict bool) *ReportHandler {
	return &ReportHandler{service: service, strict: strict}
}

// Create handles POST /v1/reports
// @Summary Build report
// @Description Score every instrument of a submitted snapshot and assemble the report model. Instruments that fail to score are listed under failures, or reject the whole report in strict mode.
// @Tags reports
// @Accept json
// @Produce json
// @Param strict query boolean false "Reject the report when any instrument fails to score"
// @Param request body domain.ReportRequest true "Response snapshot"
// @Success 200 {object} domain.ReportResponse "Report model"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 422 {object} problem.Problem "Validation failed, or strict report with scoring failures"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports [post]
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	strict, ok := h.strictMode(w, r)
	if !ok {
		return
	}

	var req domain.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, r, problem.BadRequest("Invalid JSON body"))
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		writeProblem(w, r, problem.ValidationError("Request body contains invalid fields", fieldErrors))
		return
	}

	resp, err := h.service.Build(r.Context(), &req, strict)
	if err != nil {
		writeProblem(w, r, scoringProblem(err, "Failed to build report"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetForPatient handles GET /v1/patients/{patientId}/report
// @Summary Build patient report
// @Description Build a report from the patient's most recent stored snapshot, with the patient metadata attached.
// @Tags reports
// @Produce json
// @Param patientId path string true "Patient ID" example(P001)
// @Param strict query boolean false "Reject the report when any instrument fails to score"
// @Param metadata_keys query string false "Comma separated metadata keys to keep" example(name,age)
// @Success 200 {object} domain.ReportResponse "Report model"
// @Failure 400 {object} problem.Problem "Invalid patient ID or parameters"
// @Failure 404 {object} problem.Problem "Patient or snapshot not found"
// @Failure 422 {object} problem.Problem "Strict report with scoring failures"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/report [get]
func (h *ReportHandler) GetForPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientId")
	if !validation.ValidPatientID(patientID) {
		writeProblem(w, r, problem.BadRequest("Invalid patient ID format"))
		return
	}

	strict, ok := h.strictMode(w, r)
	if !ok {
		return
	}

	var keys []string
	if raw := r.URL.Query().Get("metadata_keys"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}

	resp, err := h.service.BuildForPatient(r.Context(), patientID, keys, strict)
	if err != nil {
		writeProblem(w, r, scoringProblem(err, "Failed to build report"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *ReportHandler) strictMode(w http.ResponseWriter, r *http.Request) (bool, bool) {
	raw := r.URL.Query().Get("strict")
	if raw == "" {
		return h.strict, true
	}
	strict, err := strconv.ParseBool(raw)
	if err != nil {
		writeProblem(w, r, problem.ValidationError("Invalid query parameters", []problem.FieldError{{
			Field:   "strict",
			Message: "must be a boolean",
		}}))
		return false, false
	}
	return strict, true
}
