package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAnswerFormat = errors.New("invalid answer format")
	ErrOutOfRange          = errors.New("answer out of range")
	ErrMissingAnswer       = errors.New("missing answer")
	ErrInconsistentScale   = errors.New("inconsistent scale definition")
	ErrUnknownInstrument   = errors.New("unknown instrument")
)

// AnswerError reports a failure tied to one question of one instrument.
// Instrument is filled in by the engine once the failure leaves a scorer.
type AnswerError struct {
	Instrument string
	Field      string
	Value      any
	Err        error
}

func (e *AnswerError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s (value %#v)", e.Field, msg, e.Value)
	}
	if e.Instrument != "" {
		msg = e.Instrument + ": " + msg
	}
	return msg
}

func (e *AnswerError) Unwrap() error {
	return e.Err
}

// Kind returns the short name of the failure category, used in API payloads.
func (e *AnswerError) Kind() string {
	return KindOf(e.Err)
}

// KindOf maps an error onto one of the published failure categories.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAnswerFormat):
		return "InvalidAnswerFormat"
	case errors.Is(err, ErrOutOfRange):
		return "OutOfRange"
	case errors.Is(err, ErrMissingAnswer):
		return "MissingAnswer"
	case errors.Is(err, ErrInconsistentScale):
		return "InconsistentScaleDefinition"
	case errors.Is(err, ErrUnknownInstrument):
		return "UnknownInstrument"
	case errors.Is(err, ErrInvalidDefinition):
		return "InvalidDefinition"
	default:
		return "Unknown"
	}
}

func invalidFormat(field string, value any) error {
	return &AnswerError{Field: field, Value: value, Err: ErrInvalidAnswerFormat}
}

func outOfRange(field string, value any, detail string) error {
	return &AnswerError{Field: field, Value: value, Err: fmt.Errorf("%w: %s", ErrOutOfRange, detail)}
}

func missing(field string) error {
	return &AnswerError{Field: field, Err: ErrMissingAnswer}
}

// withInstrument stamps the instrument id on an AnswerError, wrapping other errors.
func withInstrument(instrument string, err error) error {
	if err == nil {
		return nil
	}
	var ae *AnswerError
	if errors.As(err, &ae) {
		if ae.Instrument == "" {
			cp := *ae
			cp.Instrument = instrument
			return &cp
		}
		return err
	}
	return &AnswerError{Instrument: instrument, Err: err}
}
