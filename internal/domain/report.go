package domain

import (
	"github.com/blaisecz/questionnaire-report/internal/report"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

// ScoreRequest is the request body for scoring a single instrument.
type ScoreRequest struct {
	// Raw answers keyed by question id
	Answers map[string]any `json:"answers" validate:"required" swaggertype:"object"`
}

// ScoreResponse is the result of scoring a single instrument.
// @Description Scores for one instrument.
type ScoreResponse struct {
	InstrumentID string         `json:"instrument_id" example:"WHO5"`
	Scores       scoring.Scores `json:"scores" swaggertype:"object"`
	// Overall score on a 0-100 scale, present when the instrument declares a max score
	StandardizedScore *float64 `json:"standardized_score,omitempty" example:"60"`
}

// ReportRequest is the request body for building a report.
type ReportRequest struct {
	Snapshot
	// Patient metadata to attach to the report
	Metadata map[string]any `json:"metadata,omitempty" swaggertype:"object"`
	// Metadata keys to keep; all keys are kept when omitted
	MetadataKeys []string `json:"metadata_keys,omitempty" validate:"omitempty,dive,required"`
}

// ReportResponse is the generated report.
// @Description Report model with one record per scored instrument.
type ReportResponse struct {
	report.Model
}

// InstrumentSummary is the list view of an instrument definition.
// @Description Instrument catalog entry.
type InstrumentSummary struct {
	ID            string       `json:"instrument_id" example:"PSQI"`
	Title         string       `json:"title" example:"Pittsburgh Sleep Quality Index"`
	Kind          scoring.Kind `json:"kind" example:"psqi"`
	Questions     int          `json:"questions" example:"17"`
	MaxScore      float64      `json:"max_score,omitempty" example:"21"`
	HigherIsWorse bool         `json:"higher_is_worse" example:"true"`
}

func NewInstrumentSummary(def scoring.Instrument) InstrumentSummary {
	return InstrumentSummary{
		ID:            def.ID,
		Title:         def.Title,
		Kind:          def.Kind,
		Questions:     len(def.Questions),
		MaxScore:      def.MaxScore,
		HigherIsWorse: def.HigherIsWorse,
	}
}
