package scoring

import "fmt"

// Common score keys.
const (
	OverallScore = "overall_score"
	MaxScore     = "max_score"
)

// Scores maps score names to values for one instrument.
type Scores map[string]float64

// ScoreFunc scores one response to def. It must not retain answers.
type ScoreFunc func(def *Instrument, answers Answers) (Scores, error)

func scoreNone(*Instrument, Answers) (Scores, error) {
	return Scores{}, nil
}

var scorers = map[Kind]ScoreFunc{
	KindNone:      scoreNone,
	KindSum:       scoreSum,
	KindPSQI:      scorePSQI,
	KindHADS:      scoreHADS,
	KindAdherence: scoreAdherence,
}

// Result is the outcome of scoring one instrument of a snapshot.
type Result struct {
	InstrumentID string
	Scores       Scores
	Err          error
}

// Engine scores responses against a fixed set of validated definitions.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	defs  []Instrument
	index map[string]int
}

// NewEngine validates every definition and indexes them by id. Definition
// order is kept for ScoreAll and Instruments.
func NewEngine(defs ...Instrument) (*Engine, error) {
	e := &Engine{
		defs:  make([]Instrument, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := e.index[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate instrument %q", ErrInvalidDefinition, def.ID)
		}
		e.index[def.ID] = len(e.defs)
		e.defs = append(e.defs, def)
	}
	return e, nil
}

// Instruments returns the definitions in catalog order.
func (e *Engine) Instruments() []Instrument {
	out := make([]Instrument, len(e.defs))
	copy(out, e.defs)
	return out
}

// Instrument looks up a definition by id.
func (e *Engine) Instrument(id string) (Instrument, bool) {
	i, ok := e.index[id]
	if !ok {
		return Instrument{}, false
	}
	return e.defs[i], true
}

// Score scores one response. Every failure is an *AnswerError carrying the
// instrument id; no partial scores are returned.
func (e *Engine) Score(instrumentID string, answers Answers) (Scores, error) {
	def, ok := e.Instrument(instrumentID)
	if !ok {
		return nil, &AnswerError{Instrument: instrumentID, Err: ErrUnknownInstrument}
	}
	return score(&def, answers)
}

// ScoreAll scores every known instrument found in responses, keyed by
// instrument id. An instrument without a response fails with
// ErrMissingAnswer. Results follow catalog order.
func (e *Engine) ScoreAll(responses map[string]Answers) []Result {
	results := make([]Result, 0, len(e.defs))
	for i := range e.defs {
		def := &e.defs[i]
		answers, ok := responses[def.ID]
		if !ok {
			results = append(results, Result{
				InstrumentID: def.ID,
				Err:          &AnswerError{Instrument: def.ID, Err: ErrMissingAnswer},
			})
			continue
		}
		scores, err := score(def, answers)
		results = append(results, Result{InstrumentID: def.ID, Scores: scores, Err: err})
	}
	return results
}

func score(def *Instrument, answers Answers) (Scores, error) {
	fn := scorers[def.Kind]
	scores, err := fn(def, answers)
	if err != nil {
		return nil, withInstrument(def.ID, err)
	}
	if def.MaxScore > 0 {
		scores[MaxScore] = def.MaxScore
	}
	return scores, nil
}
