package scoring

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestSplitTheDifference(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    float64
		wantErr error
	}{
		{name: "range", raw: "6-7", want: 6.5},
		{name: "range with spaces", raw: " 5 - 6 ", want: 5.5},
		{name: "range with en dash", raw: "7–8", want: 7.5},
		{name: "decimal range", raw: "6.5-7.5", want: 7},
		{name: "int", raw: 7, want: 7},
		{name: "float", raw: 7.25, want: 7.25},
		{name: "json number", raw: json.Number("8"), want: 8},
		{name: "digit string", raw: "30", want: 30},
		{name: "word", raw: "abc", wantErr: ErrInvalidAnswerFormat},
		{name: "nil", raw: nil, wantErr: ErrInvalidAnswerFormat},
		{name: "bool", raw: true, wantErr: ErrInvalidAnswerFormat},
		{name: "three parts", raw: "5-6-7", wantErr: ErrInvalidAnswerFormat},
		{name: "open range", raw: "6-", wantErr: ErrInvalidAnswerFormat},
		{name: "non numeric range", raw: "six-seven", wantErr: ErrInvalidAnswerFormat},
		{name: "empty", raw: "", wantErr: ErrInvalidAnswerFormat},
		{name: "nan", raw: math.NaN(), wantErr: ErrInvalidAnswerFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitTheDifference(tt.raw, "q4_sleep_hours")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SplitTheDifference(%#v) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				var ae *AnswerError
				if !errors.As(err, &ae) || ae.Field != "q4_sleep_hours" {
					t.Errorf("error should name the field, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SplitTheDifference(%#v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTimeRangeHours(t *testing.T) {
	tests := []struct {
		raw     any
		want    float64
		wantErr bool
	}{
		{raw: "23:00-07:30", want: 8.5},
		{raw: "22:15-06:45", want: 8.5},
		{raw: "01:00-09:00", want: 8},
		{raw: "23:00 - 00:00", want: 1},
		{raw: "7:30-8:00", want: 0.5},
		{raw: "25:00-07:00", wantErr: true},
		{raw: "23:60-07:00", wantErr: true},
		{raw: "23:00", wantErr: true},
		{raw: "late-early", wantErr: true},
		{raw: 8, wantErr: true},
	}

	for _, tt := range tests {
		got, err := TimeRangeHours(tt.raw, "sleep_window")
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAnswerFormat) {
				t.Errorf("TimeRangeHours(%#v) error = %v, want InvalidAnswerFormat", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("TimeRangeHours(%#v) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TimeRangeHours(%#v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestClockHours(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "23:30", want: 23.5},
		{raw: "7:15", want: 7.25},
		{raw: "22:00-23:00", want: 22.5},
		{raw: "23:00-01:00", want: 0},
	}
	for _, tt := range tests {
		got, err := ClockHours(tt.raw, PSQIBedtime)
		if err != nil {
			t.Errorf("ClockHours(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ClockHours(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestTimeInBed(t *testing.T) {
	tests := []struct {
		name    string
		bed     any
		wake    any
		want    float64
		wantErr error
	}{
		{name: "over midnight", bed: "23:00", wake: "07:00", want: 8},
		{name: "after midnight", bed: "01:30", wake: "09:00", want: 7.5},
		{name: "same time", bed: "23:00", wake: "23:00", wantErr: ErrOutOfRange},
		{name: "bad wake time", bed: "23:00", wake: "seven", wantErr: ErrInvalidAnswerFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := Answers{PSQIBedtime: tt.bed, PSQIWakeTime: tt.wake}
			got, err := TimeInBed(answers, PSQIBedtime, PSQIWakeTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TimeInBed = %v, want %v", got, tt.want)
			}
		})
	}

	_, err := TimeInBed(Answers{PSQIBedtime: "23:00"}, PSQIBedtime, PSQIWakeTime)
	if !errors.Is(err, ErrMissingAnswer) {
		t.Errorf("missing wake time error = %v, want MissingAnswer", err)
	}
}
