package domain

import "github.com/blaisecz/questionnaire-report/internal/scoring"

// Snapshot is one dated set of questionnaire responses for a patient.
// Each question maps either to a literal answer or to an
// {"answer": ..., "comment": "..."} object.
// @Description Patient response snapshot keyed by instrument id, then question id.
type Snapshot struct {
	// Patient identifier
	PatientID string `json:"patient_id" validate:"required,patient_id" example:"P001"`
	// Date the questionnaires were answered (YYYY-MM-DD)
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-03-04"`
	// Answers per instrument
	Questionnaires map[string]map[string]any `json:"questionnaires" validate:"required,min=1" swaggertype:"object"`
}

// PatientMetadata mirrors the metadata.json file stored next to the snapshots.
type PatientMetadata struct {
	Metadata map[string]any `json:"metadata"`
}

// SplitAnswersAndComments separates commented answers from literal ones.
// Every question gets an entry in both maps; literal answers have a nil comment.
func SplitAnswersAndComments(questionnaires map[string]map[string]any) (map[string]scoring.Answers, map[string]scoring.Comments) {
	answers := make(map[string]scoring.Answers, len(questionnaires))
	comments := make(map[string]scoring.Comments, len(questionnaires))

	for instrumentID, questions := range questionnaires {
		a := make(scoring.Answers, len(questions))
		c := make(scoring.Comments, len(questions))
		for questionID, value := range questions {
			obj, ok := value.(map[string]any)
			if !ok {
				a[questionID] = value
				c[questionID] = nil
				continue
			}
			a[questionID] = obj["answer"]
			if s, ok := obj["comment"].(string); ok {
				c[questionID] = &s
			} else {
				c[questionID] = nil
			}
		}
		answers[instrumentID] = a
		comments[instrumentID] = c
	}
	return answers, comments
}
