package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidDefinition marks a structurally broken instrument definition.
var ErrInvalidDefinition = errors.New("invalid instrument definition")

// Kind selects the scoring rule applied to an instrument.
type Kind string

const (
	// KindNone carries answers through without scoring them.
	KindNone Kind = "none"
	// KindSum validates every scored item on the shared bound and sums them.
	KindSum Kind = "sum"
	// KindPSQI is the seven-component Pittsburgh Sleep Quality Index.
	KindPSQI Kind = "psqi"
	// KindHADS is the two-subscale Hospital Anxiety and Depression Scale.
	KindHADS Kind = "hads"
	// KindAdherence sums categorical items, each rescaled onto [0, 1].
	KindAdherence Kind = "adherence"
)

// Instrument describes one questionnaire as plain data.
type Instrument struct {
	ID            string           `json:"instrument_id" yaml:"instrument_id" validate:"required"`
	Title         string           `json:"title" yaml:"title"`
	Kind          Kind             `json:"kind" yaml:"kind" validate:"required,oneof=none sum psqi hads adherence"`
	Scales        map[string]Scale `json:"scales,omitempty" yaml:"scales,omitempty" validate:"dive"`
	Questions     []Question       `json:"questions" yaml:"questions" validate:"dive"`
	MaxScore      float64          `json:"max_score,omitempty" yaml:"max_score,omitempty" validate:"gte=0"`
	Multiplier    float64          `json:"multiplier,omitempty" yaml:"multiplier,omitempty" validate:"gte=0"`
	HigherIsWorse bool             `json:"higher_is_worse" yaml:"higher_is_worse"`
}

// Scale is an answer scale shared by one or more questions. Numeric scales
// declare a Range; categorical scales map answer words onto points.
type Scale struct {
	Name    string            `json:"name,omitempty" yaml:"name,omitempty"`
	Range   Bound             `json:"range" yaml:"range"`
	Labels  map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Choices map[string]int    `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Categorical reports whether answers on the scale are words rather than numbers.
func (s Scale) Categorical() bool {
	return len(s.Choices) > 0
}

// Question is one item of an instrument.
type Question struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Scale    string `json:"scale,omitempty" yaml:"scale,omitempty"`
	Reverse  bool   `json:"reverse,omitempty" yaml:"reverse,omitempty"`
	Subscale string `json:"subscale,omitempty" yaml:"subscale,omitempty"`
	FreeText bool   `json:"free_text,omitempty" yaml:"free_text,omitempty"`
}

// ScaleFor resolves the scale a question answers on.
func (in *Instrument) ScaleFor(q Question) (Scale, bool) {
	if q.Scale == "" {
		return Scale{}, false
	}
	s, ok := in.Scales[q.Scale]
	return s, ok
}

// QuestionIDs returns the ids of all questions in definition order.
func (in *Instrument) QuestionIDs() []string {
	ids := make([]string, 0, len(in.Questions))
	for _, q := range in.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}

// SharedBound returns the range common to every numeric scale of the
// instrument. ok is false when the instrument has no numeric scale.
// Two numeric scales with different ranges are a configuration defect.
func (in *Instrument) SharedBound() (bound Bound, ok bool, err error) {
	names := make([]string, 0, len(in.Scales))
	for name, s := range in.Scales {
		if !s.Categorical() {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for i, name := range names {
		r := in.Scales[name].Range
		if i == 0 {
			bound = r
			continue
		}
		if r != bound {
			return Bound{}, false, &AnswerError{
				Instrument: in.ID,
				Err: fmt.Errorf("%w: scale %q has range %s, scale %q has range %s",
					ErrInconsistentScale, names[0], bound, name, r),
			}
		}
	}
	return bound, len(names) > 0, nil
}

// Validate checks the definition for defects that would make every
// response to it unscorable. It runs once, when an engine is built.
func (in *Instrument) Validate() error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("%w: missing instrument_id", ErrInvalidDefinition)
	}
	if _, ok := scorers[in.Kind]; !ok {
		return in.defect("", "unknown kind %q", in.Kind)
	}

	for name, s := range in.Scales {
		if s.Range.Min > s.Range.Max {
			return in.defect("", "scale %q has inverted range %s", name, s.Range)
		}
		seen := make(map[string]bool, len(s.Choices))
		for word, points := range s.Choices {
			key := strings.ToLower(strings.TrimSpace(word))
			if seen[key] {
				return in.defect("", "scale %q repeats choice %q", name, key)
			}
			seen[key] = true
			if !s.Range.Contains(points) {
				return in.defect("", "scale %q choice %q scores %d outside %s", name, word, points, s.Range)
			}
		}
		labels := make(map[string]bool, len(s.Labels))
		for key := range s.Labels {
			folded := strings.ToLower(strings.TrimSpace(key))
			if labels[folded] {
				return in.defect("", "scale %q repeats label %q", name, folded)
			}
			labels[folded] = true
		}
	}

	ids := make(map[string]bool, len(in.Questions))
	for _, q := range in.Questions {
		if q.ID == "" {
			return in.defect("", "question without id")
		}
		if ids[q.ID] {
			return in.defect(q.ID, "duplicate question id")
		}
		ids[q.ID] = true
		if q.Scale != "" {
			if _, ok := in.Scales[q.Scale]; !ok {
				return &AnswerError{Instrument: in.ID, Field: q.ID,
					Err: fmt.Errorf("%w: unknown scale %q", ErrInconsistentScale, q.Scale)}
			}
		}
	}

	bound, hasBound, err := in.SharedBound()
	if err != nil {
		return err
	}

	switch in.Kind {
	case KindNone:
		if in.MaxScore > 0 || in.Multiplier > 0 {
			return in.defect("", "unscored instrument cannot declare max_score or multiplier")
		}
	case KindSum:
		if !hasBound {
			return in.defect("", "sum instrument needs a numeric scale")
		}
		if len(in.scoredQuestions()) == 0 {
			return in.defect("", "sum instrument has no scored questions")
		}
	case KindHADS:
		if !hasBound {
			return in.defect("", "hads instrument needs a numeric scale")
		}
		for _, sub := range []string{SubscaleAnxiety, SubscaleDepression} {
			if len(in.subscale(sub)) == 0 {
				return in.defect("", "hads instrument has no %s items", sub)
			}
		}
	case KindPSQI:
		if hasBound && bound != psqiItemBound {
			return in.defect("", "psqi items are scored %s, got %s", psqiItemBound, bound)
		}
		for _, id := range PSQIItemIDs() {
			if !ids[id] {
				return in.defect(id, "psqi instrument is missing the item")
			}
		}
	case KindAdherence:
		for _, q := range in.scoredQuestions() {
			s, ok := in.ScaleFor(q)
			if !ok || !s.Categorical() || s.Range.Max <= s.Range.Min {
				return in.defect(q.ID, "adherence items need a categorical scale with a non-empty range")
			}
		}
	}
	return nil
}

func (in *Instrument) defect(field, format string, args ...any) error {
	return &AnswerError{
		Instrument: in.ID,
		Field:      field,
		Err:        fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...)),
	}
}

// scoredQuestions returns every question that is not free text.
func (in *Instrument) scoredQuestions() []Question {
	var qs []Question
	for _, q := range in.Questions {
		if !q.FreeText {
			qs = append(qs, q)
		}
	}
	return qs
}

func (in *Instrument) subscale(name string) []Question {
	var qs []Question
	for _, q := range in.Questions {
		if q.Subscale == name && !q.FreeText {
			qs = append(qs, q)
		}
	}
	return qs
}
