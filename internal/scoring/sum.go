package scoring

// PercentageScore is set for sum instruments that declare a multiplier.
const PercentageScore = "percentage_score"

// SumItems validates every listed item against bound and returns their sum.
// A missing or invalid item aborts the whole sum.
func SumItems(answers Answers, ids []string, bound Bound) (int, error) {
	sum := 0
	for _, id := range ids {
		v, err := validatedItem(answers, id, bound)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// scoreSum is the table-driven rule for simple Likert instruments such as
// WHO-5 or the distress and food behaviour scales.
func scoreSum(def *Instrument, answers Answers) (Scores, error) {
	bound, _, err := def.SharedBound()
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, q := range def.scoredQuestions() {
		if s, ok := def.ScaleFor(q); ok && s.Categorical() {
			continue
		}
		ids = append(ids, q.ID)
	}

	total, err := SumItems(answers, ids, bound)
	if err != nil {
		return nil, err
	}

	scores := Scores{OverallScore: float64(total)}
	if def.Multiplier > 0 {
		scores[PercentageScore] = float64(total) * def.Multiplier
	}
	return scores, nil
}
