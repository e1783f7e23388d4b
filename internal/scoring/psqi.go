package scoring

import "fmt"

// PSQI item ids. The disturbance items are q5a..q5i.
const (
	PSQIBedtime      = "q1_bedtime"
	PSQILatency      = "q2_sleep_latency_min"
	PSQIWakeTime     = "q3_wake_time"
	PSQISleepHours   = "q4_sleep_hours"
	PSQITrouble      = "q5a"
	PSQIQuality      = "q6_overall_quality"
	PSQIMedication   = "q7_medication"
	PSQIStayingAwake = "q8_staying_awake"
	PSQIEnthusiasm   = "q9_enthusiasm"
)

// PSQI score keys.
const (
	PSQIDuration        = "C1_duration"
	PSQIDisturbance     = "C2_disturbance"
	PSQILatencyScore    = "C3_latency"
	PSQIDayDysfunction  = "C4_day_dysfunction"
	PSQIEfficiency      = "C5_sleep_efficiency"
	PSQIOverallQuality  = "C6_overall_sleep_quality"
	PSQIMedicationScore = "C7_medication"
	PSQIGlobal          = "global_score"
)

var psqiItemBound = Bound{Min: 0, Max: 3}

// PSQIItemIDs lists every question a PSQI response must answer.
func PSQIItemIDs() []string {
	ids := []string{PSQIBedtime, PSQILatency, PSQIWakeTime, PSQISleepHours}
	ids = append(ids, psqiDisturbanceIDs(true)...)
	return append(ids, PSQIQuality, PSQIMedication, PSQIStayingAwake, PSQIEnthusiasm)
}

// psqiDisturbanceIDs returns q5b..q5i, with q5a first when withTrouble is set.
func psqiDisturbanceIDs(withTrouble bool) []string {
	var ids []string
	if withTrouble {
		ids = append(ids, PSQITrouble)
	}
	for c := 'b'; c <= 'i'; c++ {
		ids = append(ids, fmt.Sprintf("q5%c", c))
	}
	return ids
}

type psqiComponent struct {
	key   string
	score func(Answers) (int, error)
}

var psqiComponents = []psqiComponent{
	{PSQIDuration, PSQIDurationScore},
	{PSQIDisturbance, PSQIDisturbanceScore},
	{PSQILatencyScore, PSQILatencyComponent},
	{PSQIDayDysfunction, PSQIDayDysfunctionScore},
	{PSQIEfficiency, PSQIEfficiencyScore},
	{PSQIOverallQuality, psqiDirect(PSQIQuality)},
	{PSQIMedicationScore, psqiDirect(PSQIMedication)},
}

// scorePSQI computes the seven components and their sum. The first failing
// component aborts the instrument.
func scorePSQI(_ *Instrument, answers Answers) (Scores, error) {
	scores := make(Scores, len(psqiComponents)+2)
	global := 0
	for _, c := range psqiComponents {
		v, err := c.score(answers)
		if err != nil {
			return nil, err
		}
		scores[c.key] = float64(v)
		global += v
	}
	scores[PSQIGlobal] = float64(global)
	scores[OverallScore] = float64(global)
	return scores, nil
}

// PSQIDurationScore buckets reported sleep hours:
// 7h or more is 0, [6, 7) is 1, [5, 6) is 2 and below 5 is 3.
func PSQIDurationScore(answers Answers) (int, error) {
	hours, err := normalizedField(answers, PSQISleepHours, 0, hoursPerDay)
	if err != nil {
		return 0, err
	}
	return durationBucket(hours), nil
}

func durationBucket(hours float64) int {
	switch {
	case hours >= 7:
		return 0
	case hours >= 6:
		return 1
	case hours >= 5:
		return 2
	default:
		return 3
	}
}

// PSQIDisturbanceScore sums the eight disturbance items q5b..q5i and
// buckets the 0-24 total into 0, 1-8, 9-16 and 17-24.
func PSQIDisturbanceScore(answers Answers) (int, error) {
	sum := 0
	for _, id := range psqiDisturbanceIDs(false) {
		v, err := validatedItem(answers, id, psqiItemBound)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	switch {
	case sum == 0:
		return 0, nil
	case sum <= 8:
		return 1, nil
	case sum <= 16:
		return 2, nil
	default:
		return 3, nil
	}
}

// PSQILatencyComponent combines the minutes taken to fall asleep with the
// trouble-falling-asleep item q5a.
func PSQILatencyComponent(answers Answers) (int, error) {
	minutes, err := normalizedField(answers, PSQILatency, 0, hoursPerDay*minutesPerHour)
	if err != nil {
		return 0, err
	}
	trouble, err := validatedItem(answers, PSQITrouble, psqiItemBound)
	if err != nil {
		return 0, err
	}
	return pairBucket(latencyBucket(minutes) + trouble), nil
}

func latencyBucket(minutes float64) int {
	switch {
	case minutes <= 15:
		return 0
	case minutes <= 30:
		return 1
	case minutes <= 60:
		return 2
	default:
		return 3
	}
}

// pairBucket maps a 0-6 sum of two 0-3 scores onto 0-3.
func pairBucket(sum int) int {
	switch {
	case sum == 0:
		return 0
	case sum <= 2:
		return 1
	case sum <= 4:
		return 2
	default:
		return 3
	}
}

// PSQIDayDysfunctionScore sums the staying-awake and enthusiasm items.
func PSQIDayDysfunctionScore(answers Answers) (int, error) {
	awake, err := validatedItem(answers, PSQIStayingAwake, psqiItemBound)
	if err != nil {
		return 0, err
	}
	enthusiasm, err := validatedItem(answers, PSQIEnthusiasm, psqiItemBound)
	if err != nil {
		return 0, err
	}
	return pairBucket(awake + enthusiasm), nil
}

// PSQIEfficiencyScore buckets sleep hours as a share of time in bed:
// 85% or more is 0, [75, 85) is 1, [65, 75) is 2 and below 65 is 3.
func PSQIEfficiencyScore(answers Answers) (int, error) {
	tib, err := TimeInBed(answers, PSQIBedtime, PSQIWakeTime)
	if err != nil {
		return 0, err
	}
	hours, err := normalizedField(answers, PSQISleepHours, 0, hoursPerDay)
	if err != nil {
		return 0, err
	}
	return efficiencyBucket(hours / tib * 100), nil
}

func efficiencyBucket(pct float64) int {
	switch {
	case pct >= 85:
		return 0
	case pct >= 75:
		return 1
	case pct >= 65:
		return 2
	default:
		return 3
	}
}

func psqiDirect(field string) func(Answers) (int, error) {
	return func(answers Answers) (int, error) {
		return validatedItem(answers, field, psqiItemBound)
	}
}
