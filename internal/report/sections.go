package report

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

// Section is one instrument card on the dashboard.
type Section struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	BadgeText string `json:"badge_text"`
	Rows      []Row  `json:"rows"`
}

// Row is one answered question of a section.
type Row struct {
	QuestionID  string   `json:"question_id"`
	Question    string   `json:"question"`
	Answer      any      `json:"answer"`
	Score       *float64 `json:"score"`
	Translation string   `json:"translation"`
	Comment     *string  `json:"comment"`
	Slug        string   `json:"slug"`
	Reversed    bool     `json:"reversed,omitempty"`
}

// BuildSection lays out def's questions with their answers and comments.
// Questions without an answer still get a row so cards keep their shape.
func BuildSection(def scoring.Instrument, answers scoring.Answers, comments scoring.Comments) (Section, error) {
	bound, ok, err := def.SharedBound()
	if err != nil {
		return Section{}, err
	}

	s := Section{
		ID:    def.ID,
		Title: def.Title,
		Rows:  make([]Row, 0, len(def.Questions)),
	}
	if ok {
		s.BadgeText = BadgeText(bound, def.HigherIsWorse)
	}

	for _, q := range def.Questions {
		answer := answers[q.ID]
		row := Row{
			QuestionID: q.ID,
			Question:   q.Text,
			Answer:     answer,
			Score:      answerScore(answer),
			Comment:    comments[q.ID],
			Slug:       Slugify(q.Text),
		}
		if scale, ok := def.ScaleFor(q); ok {
			row.Translation = translate(scale, answer)
			if q.Reverse {
				row.Reversed = true
				row.Score = reversedScore(answer, q.ID, scale.Range)
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// BadgeText describes the answer scale of a card, e.g. "Scale 0-3 | higher = worse".
func BadgeText(bound scoring.Bound, higherIsWorse bool) string {
	direction := "better"
	if higherIsWorse {
		direction = "worse"
	}
	return fmt.Sprintf("Scale %d-%d | higher = %s", bound.Min, bound.Max, direction)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func answerScore(answer any) *float64 {
	var v float64
	switch n := answer.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	default:
		return nil
	}
	return &v
}

// reversedScore is what a reverse-scored answer adds to its total.
// Answers that do not validate have no score.
func reversedScore(answer any, field string, bound scoring.Bound) *float64 {
	n, err := scoring.ValidateInt(answer, field, bound)
	if err != nil {
		return nil
	}
	v := float64(bound.Reverse(n))
	return &v
}

// translate looks the answer up in the scale labels, first verbatim and
// then ignoring case and surrounding space. Keys are tried in sorted order.
func translate(scale scoring.Scale, answer any) string {
	key, ok := labelKey(answer)
	if !ok {
		return ""
	}
	if label, ok := scale.Labels[key]; ok {
		return label
	}
	want := labelFold(key)
	keys := make([]string, 0, len(scale.Labels))
	for k := range scale.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if labelFold(k) == want {
			return scale.Labels[k]
		}
	}
	return ""
}

func labelFold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func labelKey(answer any) (string, bool) {
	switch v := answer.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		if v {
			return "yes", true
		}
		return "no", true
	default:
		return "", false
	}
}
