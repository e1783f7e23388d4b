package scoring

// HADS subscale names as used in Question.Subscale.
const (
	SubscaleAnxiety    = "anxiety"
	SubscaleDepression = "depression"
)

// HADS score keys.
const (
	HADSAnxiety    = "anxiety_score"
	HADSDepression = "depression_score"
)

// scoreHADS sums the anxiety and depression subscales. Reverse-scored items
// are inverted one by one before they are added.
func scoreHADS(def *Instrument, answers Answers) (Scores, error) {
	bound, _, err := def.SharedBound()
	if err != nil {
		return nil, err
	}

	anxiety, err := subscaleSum(def.subscale(SubscaleAnxiety), answers, bound)
	if err != nil {
		return nil, err
	}
	depression, err := subscaleSum(def.subscale(SubscaleDepression), answers, bound)
	if err != nil {
		return nil, err
	}

	return Scores{
		HADSAnxiety:    float64(anxiety),
		HADSDepression: float64(depression),
		OverallScore:   float64(anxiety + depression),
	}, nil
}

func subscaleSum(items []Question, answers Answers, bound Bound) (int, error) {
	sum := 0
	for _, q := range items {
		v, err := validatedItem(answers, q.ID, bound)
		if err != nil {
			return 0, err
		}
		if q.Reverse {
			v = bound.Reverse(v)
		}
		sum += v
	}
	return sum, nil
}
