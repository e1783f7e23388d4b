// Package report assembles scored questionnaire responses into the report
// model consumed by the rendering layer.
package report

import (
	"errors"
	"fmt"

	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

// ErrNotStandardizable is returned when an instrument that declares a
// maximum score lacks the scores needed to put it on a 0-100 scale.
var ErrNotStandardizable = errors.New("score cannot be standardized")

// Catalog resolves instrument definitions by id.
type Catalog interface {
	Instrument(id string) (scoring.Instrument, bool)
}

// Record bundles one instrument's response with its scores.
type Record struct {
	InstrumentID string           `json:"instrument_id"`
	Title        string           `json:"title"`
	Answers      scoring.Answers  `json:"answers"`
	Comments     scoring.Comments `json:"comments"`
	Scores       scoring.Scores   `json:"scores"`
	Standardized *float64         `json:"standardized_score,omitempty"`
}

// Failure describes an instrument left out of the report.
type Failure struct {
	InstrumentID string `json:"instrument_id"`
	Field        string `json:"field,omitempty"`
	Kind         string `json:"kind"`
	Message      string `json:"message"`
}

// Model is the full report for one response snapshot.
type Model struct {
	Meta     Meta      `json:"meta"`
	Records  []Record  `json:"records"`
	Failures []Failure `json:"failures"`
	Summary  Summary   `json:"summary"`
	Sections []Section `json:"sections"`
}

// Input is one scoring pass over a snapshot.
type Input struct {
	Answers  map[string]scoring.Answers
	Comments map[string]scoring.Comments
	Results  []scoring.Result
}

// Builder turns scoring results into a Model.
type Builder struct {
	catalog Catalog
}

func NewBuilder(catalog Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build creates one record per successfully scored instrument, in result
// order, and one failure per instrument that could not be scored. It fails
// when a scored instrument that should be standardized cannot be.
func (b *Builder) Build(in Input) (*Model, error) {
	m := &Model{
		Records:  make([]Record, 0, len(in.Results)),
		Failures: []Failure{},
		Sections: make([]Section, 0, len(in.Results)),
	}

	for _, res := range in.Results {
		if res.Err != nil {
			m.Failures = append(m.Failures, failureFor(res))
			continue
		}

		def, ok := b.catalog.Instrument(res.InstrumentID)
		if !ok {
			return nil, fmt.Errorf("build report: %w", &scoring.AnswerError{
				Instrument: res.InstrumentID, Err: scoring.ErrUnknownInstrument,
			})
		}

		rec := Record{
			InstrumentID: def.ID,
			Title:        def.Title,
			Answers:      in.Answers[def.ID],
			Comments:     in.Comments[def.ID],
			Scores:       res.Scores,
		}
		if def.MaxScore > 0 {
			v, err := Standardize(def.ID, res.Scores)
			if err != nil {
				return nil, err
			}
			rec.Standardized = &v
		}

		section, err := BuildSection(def, rec.Answers, rec.Comments)
		if err != nil {
			return nil, err
		}

		m.Records = append(m.Records, rec)
		m.Sections = append(m.Sections, section)
	}

	m.Summary = Summarize(m.Records)
	return m, nil
}

// Standardize puts an instrument's overall score on a 0-100 scale as
// overall_score / max_score * 100.
func Standardize(instrumentID string, scores scoring.Scores) (float64, error) {
	if scores == nil {
		return 0, fmt.Errorf("%w: no scores found for instrument %s", ErrNotStandardizable, instrumentID)
	}
	overall, ok := scores[scoring.OverallScore]
	if !ok {
		return 0, fmt.Errorf("%w: no overall score found for instrument %s", ErrNotStandardizable, instrumentID)
	}
	maxScore, ok := scores[scoring.MaxScore]
	if !ok || maxScore <= 0 {
		return 0, fmt.Errorf("%w: no max score found for instrument %s", ErrNotStandardizable, instrumentID)
	}
	return overall / maxScore * 100, nil
}

func failureFor(res scoring.Result) Failure {
	f := Failure{
		InstrumentID: res.InstrumentID,
		Kind:         scoring.KindOf(res.Err),
		Message:      res.Err.Error(),
	}
	var ae *scoring.AnswerError
	if errors.As(res.Err, &ae) {
		f.Field = ae.Field
	}
	return f
}
