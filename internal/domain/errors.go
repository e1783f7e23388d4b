package domain

import (
	"errors"
	"fmt"

	"github.com/blaisecz/questionnaire-report/internal/report"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrIncompleteReport = errors.New("report has instruments that could not be scored")
)

// IncompleteReportError carries the failures that stopped a strict report.
type IncompleteReportError struct {
	Failures []report.Failure
}

func (e *IncompleteReportError) Error() string {
	return fmt.Sprintf("%v: %d instrument(s) failed", ErrIncompleteReport, len(e.Failures))
}

func (e *IncompleteReportError) Unwrap() error {
	return ErrIncompleteReport
}
