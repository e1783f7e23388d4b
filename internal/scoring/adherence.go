package scoring

import (
	"fmt"
	"strings"
)

// scoreAdherence adds up categorical items, each rescaled onto [0, 1] by
// the maximum of its scale. A yes/no item contributes 0 or 1 and a five-level
// frequency item contributes points / 4. Free-text items are skipped.
// Alongside overall_score a "<scale>_score" subtotal is reported per scale.
func scoreAdherence(def *Instrument, answers Answers) (Scores, error) {
	scores := Scores{}
	total := 0.0
	for _, q := range def.scoredQuestions() {
		scale, _ := def.ScaleFor(q)
		raw, err := lookup(answers, q.ID)
		if err != nil {
			return nil, err
		}
		points, err := Choice(raw, q.ID, scale)
		if err != nil {
			return nil, err
		}
		v := float64(points-scale.Range.Min) / float64(scale.Range.Max-scale.Range.Min)
		scores[q.Scale+"_score"] += v
		total += v
	}
	scores[OverallScore] = total
	return scores, nil
}

// Choice maps a categorical answer onto the points of its scale. Matching
// ignores case and surrounding space; booleans read as "yes" and "no".
// Unknown words fail with ErrInvalidAnswerFormat.
func Choice(raw any, field string, scale Scale) (int, error) {
	var word string
	switch v := raw.(type) {
	case string:
		word = v
	case bool:
		word = "no"
		if v {
			word = "yes"
		}
	default:
		return 0, invalidFormat(field, raw)
	}

	word = strings.ToLower(strings.TrimSpace(word))
	for choice, points := range scale.Choices {
		if strings.ToLower(strings.TrimSpace(choice)) == word {
			return points, nil
		}
	}
	return 0, &AnswerError{
		Field: field,
		Value: raw,
		Err:   fmt.Errorf("%w: %q is not one of the %s choices", ErrInvalidAnswerFormat, word, scale.Name),
	}
}
