package handler

import (
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
	"github.com/blaisecz/questionnaire-report/pkg/problem"
)

// writeProblem stamps the request id on p and writes it.
func writeProblem(w http.ResponseWriter, r *http.Request, p *problem.Problem) {
	if id := chimw.GetReqID(r.Context()); id != "" {
		p.WithInstance(id)
	}
	p.Write(w)
}

// scoringProblem maps service errors onto problem responses. fallback is
// used as the detail of an internal error.
func scoringProblem(err error, fallback string) *problem.Problem {
	var incomplete *domain.IncompleteReportError
	if errors.As(err, &incomplete) {
		issues := make([]problem.ScoringIssue, 0, len(incomplete.Failures))
		for _, f := range incomplete.Failures {
			issues = append(issues, problem.ScoringIssue{
				Instrument: f.InstrumentID,
				Field:      f.Field,
				Kind:       f.Kind,
				Message:    f.Message,
			})
		}
		return problem.ScoringError("One or more instruments could not be scored", issues)
	}

	if errors.Is(err, scoring.ErrUnknownInstrument) || errors.Is(err, domain.ErrNotFound) {
		return problem.NotFound(err.Error())
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return problem.BadRequest(err.Error())
	}

	var answerErr *scoring.AnswerError
	if errors.As(err, &answerErr) {
		return problem.ScoringError("Answers could not be scored", []problem.ScoringIssue{{
			Instrument: answerErr.Instrument,
			Field:      answerErr.Field,
			Kind:       answerErr.Kind(),
			Message:    answerErr.Error(),
		}})
	}

	return problem.InternalError(fallback)
}
