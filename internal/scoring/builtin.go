package scoring

import "fmt"

// Builtin returns the instrument table shipped with the service. Scorers,
// the report builder and the HTTP catalog all read from this one table.
// Each call returns a fresh copy so callers may overlay or mutate it.
func Builtin() []Instrument {
	return []Instrument{
		lifestyle(),
		emotionalDistress(),
		areasOfConcern(),
		foodBehavior(),
		dmas(),
		who5(),
		psqi(),
		hads(),
	}
}

func lifestyle() Instrument {
	return Instrument{
		ID:    "B1_Lifestyle",
		Title: "Lifestyle",
		Kind:  KindNone,
		Questions: []Question{
			{ID: "B1-1", Text: "How many days a week are you physically active for at least 30 minutes?", FreeText: true},
			{ID: "B1-2", Text: "Do you smoke?", FreeText: true},
			{ID: "B1-3", Text: "How many units of alcohol do you drink in a typical week?", FreeText: true},
		},
	}
}

func areasOfConcern() Instrument {
	return Instrument{
		ID:    "C_AreasOfConcern",
		Title: "Areas of concern",
		Kind:  KindNone,
		Questions: []Question{
			{ID: "C-1", Text: "Which areas of your diabetes care worry you the most?", FreeText: true},
			{ID: "C-2", Text: "Is there anything else you would like to discuss at your next visit?", FreeText: true},
		},
	}
}

func agreement(lo, hi int) Scale {
	return Scale{
		Name:  "agreement",
		Range: Bound{Min: lo, Max: hi},
		Labels: map[string]string{
			"0": "Not at all",
			"1": "A little",
			"2": "Somewhat",
			"3": "Quite a lot",
			"4": "Very much",
		},
	}
}

func emotionalDistress() Instrument {
	texts := []string{
		"Feeling overwhelmed by the demands of living with diabetes",
		"Feeling that I am often failing with my diabetes routine",
		"Feeling angry, scared or depressed when I think about living with diabetes",
		"Feeling that diabetes controls my life",
		"Worrying about the future and possible complications",
		"Feeling alone with my diabetes",
	}
	return Instrument{
		ID:            "B2_EmotionalDistress",
		Title:         "Emotional distress",
		Kind:          KindSum,
		Scales:        map[string]Scale{"agreement": agreement(0, 4)},
		Questions:     numbered("B2-%d", texts, "agreement"),
		MaxScore:      24,
		HigherIsWorse: true,
	}
}

func foodBehavior() Instrument {
	texts := []string{
		"I eat when I am not hungry",
		"I find it hard to stop eating once I have started",
		"I skip meals to compensate for what I ate earlier",
		"I feel guilty after eating",
		"I eat more when I am stressed or upset",
		"I avoid eating in front of other people",
	}
	return Instrument{
		ID:            "D1_FoodBehavior",
		Title:         "Food behaviour",
		Kind:          KindSum,
		Scales:        map[string]Scale{"agreement": agreement(0, 4)},
		Questions:     numbered("C1-%d", texts, "agreement"),
		MaxScore:      24,
		HigherIsWorse: true,
	}
}

func dmas() Instrument {
	return Instrument{
		ID:    "D4_DMAS",
		Title: "Medication adherence",
		Kind:  KindAdherence,
		Scales: map[string]Scale{
			"binary": {
				Name:    "yes/no",
				Range:   Bound{Min: 0, Max: 1},
				Labels:  map[string]string{"yes": "Yes", "no": "No"},
				Choices: map[string]int{"yes": 1, "no": 0},
			},
			"frequency": {
				Name:  "frequency",
				Range: Bound{Min: 0, Max: 4},
				Labels: map[string]string{
					"never":           "Never",
					"once in a while": "Once in a while",
					"sometimes":       "Sometimes",
					"usually":         "Usually",
					"always":          "Always",
				},
				Choices: map[string]int{
					"never":               0,
					"never / very rarely": 0,
					"once in a while":     1,
					"sometimes":           2,
					"usually":             3,
					"always":              4,
					"all the time":        4,
				},
			},
		},
		Questions: []Question{
			{ID: "D4-1", Text: "Do you sometimes forget to take your diabetes medication?", Scale: "binary"},
			{ID: "D4-2", Text: "Have you ever stopped taking your medication because you felt worse?", Scale: "binary"},
			{ID: "D4-3", Text: "When you feel your blood sugar is under control, do you stop taking your medication?", Scale: "binary"},
			{ID: "D4-4", Text: "How often do you have difficulty remembering to take all your medication?", Scale: "frequency"},
			{ID: "D4-5", Text: "What makes it hard to take your medication as prescribed?", FreeText: true},
			{ID: "D4-6", Text: "Did you take all your medication yesterday?", Scale: "binary"},
			{ID: "D4-7", Text: "Anything else about your medication you want to tell us?", FreeText: true},
		},
		MaxScore:      5,
		HigherIsWorse: true,
	}
}

func who5() Instrument {
	texts := []string{
		"I have felt cheerful and in good spirits",
		"I have felt calm and relaxed",
		"I have felt active and vigorous",
		"I woke up feeling fresh and rested",
		"My daily life has been filled with things that interest me",
	}
	return Instrument{
		ID:    "WHO5",
		Title: "WHO-5 well-being index",
		Kind:  KindSum,
		Scales: map[string]Scale{
			"time": {
				Name:  "time",
				Range: Bound{Min: 0, Max: 5},
				Labels: map[string]string{
					"0": "At no time",
					"1": "Some of the time",
					"2": "Less than half of the time",
					"3": "More than half of the time",
					"4": "Most of the time",
					"5": "All of the time",
				},
			},
		},
		Questions:  numbered("Q%d", texts, "time"),
		MaxScore:   25,
		Multiplier: 4,
	}
}

func frequency3() Scale {
	return Scale{
		Name:  "frequency",
		Range: psqiItemBound,
		Labels: map[string]string{
			"0": "Not during the past month",
			"1": "Less than once a week",
			"2": "Once or twice a week",
			"3": "Three or more times a week",
		},
	}
}

func psqi() Instrument {
	disturbances := []string{
		"Cannot get to sleep within 30 minutes",
		"Wake up in the middle of the night or early morning",
		"Have to get up to use the bathroom",
		"Cannot breathe comfortably",
		"Cough or snore loudly",
		"Feel too cold",
		"Feel too hot",
		"Had bad dreams",
		"Have pain",
	}
	qs := []Question{
		{ID: PSQIBedtime, Text: "When have you usually gone to bed at night?"},
		{ID: PSQILatency, Text: "How long (in minutes) has it usually taken you to fall asleep each night?"},
		{ID: PSQIWakeTime, Text: "When have you usually gotten up in the morning?"},
		{ID: PSQISleepHours, Text: "How many hours of actual sleep did you get at night?"},
	}
	for i, text := range disturbances {
		qs = append(qs, Question{ID: fmt.Sprintf("q5%c", 'a'+i), Text: text, Scale: "frequency"})
	}
	qs = append(qs,
		Question{ID: PSQIQuality, Text: "How would you rate your sleep quality overall?", Scale: "quality"},
		Question{ID: PSQIMedication, Text: "How often have you taken medicine to help you sleep?", Scale: "frequency"},
		Question{ID: PSQIStayingAwake, Text: "How often have you had trouble staying awake during daytime activities?", Scale: "frequency"},
		Question{ID: PSQIEnthusiasm, Text: "How much of a problem has it been to keep up enough enthusiasm to get things done?", Scale: "problem"},
	)
	return Instrument{
		ID:    "PSQI",
		Title: "Pittsburgh Sleep Quality Index",
		Kind:  KindPSQI,
		Scales: map[string]Scale{
			"frequency": frequency3(),
			"quality": {
				Name:  "quality",
				Range: psqiItemBound,
				Labels: map[string]string{
					"0": "Very good",
					"1": "Fairly good",
					"2": "Fairly bad",
					"3": "Very bad",
				},
			},
			"problem": {
				Name:  "problem",
				Range: psqiItemBound,
				Labels: map[string]string{
					"0": "No problem at all",
					"1": "Only a very slight problem",
					"2": "Somewhat of a problem",
					"3": "A very big problem",
				},
			},
		},
		Questions:     qs,
		MaxScore:      21,
		HigherIsWorse: true,
	}
}

func hads() Instrument {
	anxiety := []string{
		"I feel tense or wound up",
		"I get a sort of frightened feeling as if something awful is about to happen",
		"Worrying thoughts go through my mind",
		"I can sit at ease and feel relaxed",
		"I get a sort of frightened feeling like butterflies in the stomach",
		"I feel restless as I have to be on the move",
		"I get sudden feelings of panic",
	}
	depression := []string{
		"I still enjoy the things I used to enjoy",
		"I can laugh and see the funny side of things",
		"I feel cheerful",
		"I feel as if I am slowed down",
		"I have lost interest in my appearance",
		"I look forward with enjoyment to things",
		"I can enjoy a good book or radio or TV programme",
	}
	reversedAnxiety := map[int]bool{4: true}
	reversedDepression := map[int]bool{1: true, 2: true, 3: true, 6: true, 7: true}

	var qs []Question
	for i, text := range anxiety {
		qs = append(qs, Question{
			ID: fmt.Sprintf("A%d", i+1), Text: text, Scale: "severity",
			Subscale: SubscaleAnxiety, Reverse: reversedAnxiety[i+1],
		})
	}
	for i, text := range depression {
		qs = append(qs, Question{
			ID: fmt.Sprintf("D%d", i+1), Text: text, Scale: "severity",
			Subscale: SubscaleDepression, Reverse: reversedDepression[i+1],
		})
	}
	return Instrument{
		ID:    "HADS",
		Title: "Hospital Anxiety and Depression Scale",
		Kind:  KindHADS,
		Scales: map[string]Scale{
			"severity": {
				Name:  "severity",
				Range: Bound{Min: 0, Max: 3},
				Labels: map[string]string{
					"0": "Not at all",
					"1": "Occasionally",
					"2": "A lot of the time",
					"3": "Most of the time",
				},
			},
		},
		Questions:     qs,
		MaxScore:      42,
		HigherIsWorse: true,
	}
}

func numbered(format string, texts []string, scale string) []Question {
	qs := make([]Question, len(texts))
	for i, text := range texts {
		qs[i] = Question{ID: fmt.Sprintf(format, i+1), Text: text, Scale: scale}
	}
	return qs
}
