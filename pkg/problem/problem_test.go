package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "patient_id", Message: "is required"}}
	p := New(http.StatusBadRequest, "bad-request", "Bad Request", "details").WithErrors(fieldErrors)

	if got, want := p.Type, BaseURI+"/bad-request"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
}

func TestProblemWrite(t *testing.T) {
	resp := httptest.NewRecorder()
	p := BadRequest("invalid").WithInstance("req-123")
	p.Write(resp)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded Problem
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Title != "Bad Request" || decoded.Detail != "invalid" || decoded.Instance != "req-123" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestScoringError(t *testing.T) {
	issues := []ScoringIssue{{Instrument: "HADS", Field: "A4", Kind: "OutOfRange", Message: "4 not in [0, 3]"}}
	resp := httptest.NewRecorder()
	ScoringError("answers could not be scored", issues).Write(resp)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", resp.Code)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded["type"] != BaseURI+"/scoring-error" {
		t.Fatalf("unexpected type: %v", decoded["type"])
	}
	entries, ok := decoded["scoring_errors"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("scoring_errors = %v", decoded["scoring_errors"])
	}
	entry := entries[0].(map[string]any)
	if entry["instrument"] != "HADS" || entry["field"] != "A4" || entry["kind"] != "OutOfRange" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := decoded["errors"]; ok {
		t.Fatalf("field errors should be omitted")
	}
}
