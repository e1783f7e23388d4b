package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

// Answers maps question ids to raw answers as decoded from JSON: float64,
// string, bool or nil. Integer types and json.Number are accepted as well.
type Answers map[string]any

// Comments maps question ids to the optional free-text comment of the answer.
type Comments map[string]*string

// SplitTheDifference turns a raw answer into a number.
//
// Numbers are returned unchanged, digit-strings are parsed as integers and
// a "low-high" range collapses to its midpoint, so "6-7" becomes 6.5. Any
// other shape fails with ErrInvalidAnswerFormat naming field.
func SplitTheDifference(raw any, field string) (float64, error) {
	if v, ok := asNumber(raw); ok {
		return v, nil
	}

	s, ok := raw.(string)
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	s = strings.TrimSpace(s)

	if isDigits(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, invalidFormat(field, raw)
		}
		return float64(n), nil
	}

	low, high, ok := splitRange(s)
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	lo, err := parseFinite(low)
	if err != nil {
		return 0, invalidFormat(field, raw)
	}
	hi, err := parseFinite(high)
	if err != nil {
		return 0, invalidFormat(field, raw)
	}
	return (lo + hi) / 2.0, nil
}

// ClockHours parses a time-of-day answer into hours after midnight.
// "23:30" gives 23.5; a range such as "23:00-00:00" gives its midpoint,
// wrapping past midnight when the end is earlier than the start.
func ClockHours(raw any, field string) (float64, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	s = strings.TrimSpace(s)

	if start, end, isRange := splitRange(s); isRange {
		from, ok := parseClock(start)
		if !ok {
			return 0, invalidFormat(field, raw)
		}
		to, ok := parseClock(end)
		if !ok {
			return 0, invalidFormat(field, raw)
		}
		mid := from + elapsedHours(from, to)/2
		return math.Mod(mid, hoursPerDay), nil
	}

	h, ok := parseClock(s)
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	return h, nil
}

// TimeRangeHours returns the length in hours of an "HH:MM-HH:MM" answer.
// "23:00-07:30" is 8.5 hours.
func TimeRangeHours(raw any, field string) (float64, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	start, end, ok := splitRange(strings.TrimSpace(s))
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	from, ok := parseClock(start)
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	to, ok := parseClock(end)
	if !ok {
		return 0, invalidFormat(field, raw)
	}
	return elapsedHours(from, to), nil
}

// TimeInBed returns the hours between a bedtime and a wake time answer.
// The result must fall in (0, 24].
func TimeInBed(answers Answers, bedField, wakeField string) (float64, error) {
	bedRaw, err := lookup(answers, bedField)
	if err != nil {
		return 0, err
	}
	wakeRaw, err := lookup(answers, wakeField)
	if err != nil {
		return 0, err
	}

	bed, err := ClockHours(bedRaw, bedField)
	if err != nil {
		return 0, err
	}
	wake, err := ClockHours(wakeRaw, wakeField)
	if err != nil {
		return 0, err
	}

	tib := elapsedHours(bed, wake)
	if tib <= 0 || tib > hoursPerDay {
		return 0, outOfRange(wakeField, wakeRaw, fmt.Sprintf("time in bed %.2fh not in (0, 24]", tib))
	}
	return tib, nil
}

// elapsedHours measures from start to end, adding a day when end is earlier.
func elapsedHours(start, end float64) float64 {
	d := end - start
	if d < 0 {
		d += hoursPerDay
	}
	return d
}

func lookup(answers Answers, field string) (any, error) {
	v, ok := answers[field]
	if !ok {
		return nil, missing(field)
	}
	return v, nil
}

// normalizedField looks up and normalizes a numeric answer, rejecting
// values outside [lo, hi].
func normalizedField(answers Answers, field string, lo, hi float64) (float64, error) {
	raw, err := lookup(answers, field)
	if err != nil {
		return 0, err
	}
	v, err := SplitTheDifference(raw, field)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, outOfRange(field, raw, fmt.Sprintf("%g not in [%g, %g]", v, lo, hi))
	}
	return v, nil
}

// splitRange splits "a-b" into its two trimmed, non-empty halves.
// An en dash is accepted as the separator too.
func splitRange(s string) (string, string, bool) {
	s = strings.ReplaceAll(s, "–", "-")
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return "", "", false
	}
	low := strings.TrimSpace(parts[0])
	high := strings.TrimSpace(parts[1])
	if low == "" || high == "" {
		return "", "", false
	}
	return low, high, true
}

// parseClock parses "H:MM" or "HH:MM" into fractional hours.
func parseClock(s string) (float64, bool) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, false
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return 0, false
	}
	return float64(h) + float64(m)/minutesPerHour, true
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

func asNumber(raw any) (float64, bool) {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
