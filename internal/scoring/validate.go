package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bound is an inclusive integer answer range.
type Bound struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (b Bound) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

func (b Bound) String() string {
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}

// Reverse inverts v on the bound, so 0 becomes 3 on a 0-3 scale.
func (b Bound) Reverse(v int) int {
	return b.Max + b.Min - v
}

// ValidateInt reduces raw to an integer inside bound. Integers, whole JSON
// numbers and digit-strings are accepted; values outside the bound fail
// with ErrOutOfRange and everything else with ErrInvalidAnswerFormat.
// Numbers too large to hold in an int are out of range, not malformed.
func ValidateInt(raw any, field string, bound Bound) (int, error) {
	n, class := asInt(raw)
	switch class {
	case numInvalid:
		return 0, invalidFormat(field, raw)
	case numOverflow:
		return 0, outOfRange(field, raw, fmt.Sprintf("%v not in [%d, %d]", raw, bound.Min, bound.Max))
	}
	if !bound.Contains(n) {
		return 0, outOfRange(field, raw, fmt.Sprintf("%d not in [%d, %d]", n, bound.Min, bound.Max))
	}
	return n, nil
}

// validatedItem looks up field and validates it against bound.
func validatedItem(answers Answers, field string, bound Bound) (int, error) {
	raw, err := lookup(answers, field)
	if err != nil {
		return 0, err
	}
	return ValidateInt(raw, field, bound)
}

type numClass int

const (
	numOK numClass = iota
	numInvalid
	numOverflow
)

func asInt(raw any) (int, numClass) {
	switch v := raw.(type) {
	case int:
		return v, numOK
	case int32:
		return int(v), numOK
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, numOverflow
		}
		return int(v), numOK
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return asInt(i)
		}
		f, err := v.Float64()
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, numOverflow
			}
			return 0, numInvalid
		}
		return wholeFloat(f)
	case string:
		s := strings.TrimSpace(v)
		if !isDigits(s) {
			return 0, numInvalid
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, numOverflow
		}
		return asInt(int64(i))
	default:
		return 0, numInvalid
	}
}

func wholeFloat(v float64) (int, numClass) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, numInvalid
	}
	if math.Abs(v) > math.MaxInt32 {
		return 0, numOverflow
	}
	return int(v), numOK
}
