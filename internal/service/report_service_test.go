package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

func newTestReportService(t *testing.T, snapshots *MockSnapshotRepository, logs *bytes.Buffer) *reportService {
	t.Helper()
	engine, err := scoring.NewEngine(scoring.Builtin()...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}
	var repo repository.SnapshotRepository
	if snapshots != nil {
		repo = snapshots
	}
	svc := NewReportService(engine, repo, logger).(*reportService)
	svc.now = func() time.Time { return time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC) }
	return svc
}

func sampleQuestionnaires() map[string]map[string]any {
	psqi := map[string]any{
		"q1_bedtime":           "23:00",
		"q2_sleep_latency_min": map[string]any{"answer": 10.0, "comment": "Usually quick"},
		"q3_wake_time":         "07:00",
		"q4_sleep_hours":       "6-7",
		"q6_overall_quality":   1.0,
		"q7_medication":        0.0,
		"q8_staying_awake":     0.0,
		"q9_enthusiasm":        0.0,
	}
	for _, id := range []string{"q5a", "q5b", "q5c", "q5d", "q5e", "q5f", "q5g", "q5h", "q5i"} {
		psqi[id] = 0.0
	}
	return map[string]map[string]any{
		"PSQI": psqi,
		"WHO5": {"Q1": 3.0, "Q2": 3.0, "Q3": 3.0, "Q4": 3.0, "Q5": 3.0},
	}
}

func TestReportService_Score(t *testing.T) {
	svc := newTestReportService(t, nil, nil)

	resp, err := svc.Score(context.Background(), "WHO5", scoring.Answers{"Q1": 3, "Q2": 3, "Q3": 3, "Q4": 3, "Q5": 3})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if resp.Scores[scoring.PercentageScore] != 60 {
		t.Errorf("percentage = %v, want 60", resp.Scores[scoring.PercentageScore])
	}
	if resp.StandardizedScore == nil || *resp.StandardizedScore != 60 {
		t.Errorf("standardized = %v, want 60", resp.StandardizedScore)
	}

	_, err = svc.Score(context.Background(), "GAD7", scoring.Answers{})
	if !errors.Is(err, scoring.ErrUnknownInstrument) {
		t.Errorf("error = %v, want ErrUnknownInstrument", err)
	}
}

func TestReportService_BuildLenient(t *testing.T) {
	var logs bytes.Buffer
	svc := newTestReportService(t, nil, &logs)

	req := &domain.ReportRequest{
		Snapshot:     domain.Snapshot{PatientID: "P001", Questionnaires: sampleQuestionnaires()},
		Metadata:     map[string]any{"age": 54.0, "sex": "F"},
		MetadataKeys: []string{"age"},
	}
	resp, err := svc.Build(context.Background(), req, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if resp.Meta.ReportID != "R-20250304-001" || resp.Meta.Generated != "2025-03-04" {
		t.Errorf("meta = %+v", resp.Meta)
	}
	if len(resp.Meta.Patient) != 1 || resp.Meta.Patient["age"] != 54.0 {
		t.Errorf("patient meta = %v", resp.Meta.Patient)
	}

	scored := map[string]bool{}
	for _, rec := range resp.Records {
		scored[rec.InstrumentID] = true
	}
	if !scored["PSQI"] || !scored["WHO5"] {
		t.Errorf("records = %v, want PSQI and WHO5", scored)
	}
	for _, rec := range resp.Records {
		if rec.InstrumentID == "PSQI" {
			if rec.Scores[scoring.PSQIGlobal] != 3 {
				t.Errorf("PSQI global = %v, want 3", rec.Scores[scoring.PSQIGlobal])
			}
			if c := rec.Comments["q2_sleep_latency_min"]; c == nil || *c != "Usually quick" {
				t.Errorf("comment = %v", c)
			}
		}
	}

	// Six built-in instruments have no response in the snapshot.
	if len(resp.Failures) != 6 {
		t.Errorf("got %d failures, want 6", len(resp.Failures))
	}
	for _, f := range resp.Failures {
		if f.Kind != "MissingAnswer" {
			t.Errorf("failure %s kind = %q, want MissingAnswer", f.InstrumentID, f.Kind)
		}
	}
	if !strings.Contains(logs.String(), "instrument left out of report") {
		t.Errorf("expected warning logs, got %q", logs.String())
	}
}

func TestReportService_BuildStrict(t *testing.T) {
	svc := newTestReportService(t, nil, nil)
	req := &domain.ReportRequest{
		Snapshot: domain.Snapshot{PatientID: "P001", Questionnaires: sampleQuestionnaires()},
	}

	_, err := svc.Build(context.Background(), req, true)
	if !errors.Is(err, domain.ErrIncompleteReport) {
		t.Fatalf("error = %v, want ErrIncompleteReport", err)
	}
	var incomplete *domain.IncompleteReportError
	if !errors.As(err, &incomplete) || len(incomplete.Failures) != 6 {
		t.Errorf("failures not attached: %v", err)
	}
}

func TestReportService_BuildForPatient(t *testing.T) {
	snapshots := NewMockSnapshotRepository()
	snapshots.snapshots["P001"] = &domain.Snapshot{PatientID: "P001", Date: "2025-03-01", Questionnaires: sampleQuestionnaires()}
	snapshots.metadata["P001"] = &domain.PatientMetadata{Metadata: map[string]any{"age": 54.0, "sex": "F"}}
	svc := newTestReportService(t, snapshots, nil)

	resp, err := svc.BuildForPatient(context.Background(), "P001", nil, false)
	if err != nil {
		t.Fatalf("BuildForPatient: %v", err)
	}
	if len(resp.Meta.Patient) != 2 {
		t.Errorf("patient meta = %v, want all keys", resp.Meta.Patient)
	}

	_, err = svc.BuildForPatient(context.Background(), "P404", nil, false)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	snapshots.err = errors.New("disk on fire")
	if _, err := svc.BuildForPatient(context.Background(), "P001", nil, false); err == nil {
		t.Error("expected repository error to propagate")
	}
}

func TestReportService_BuildForPatientWithoutMetadata(t *testing.T) {
	snapshots := NewMockSnapshotRepository()
	snapshots.snapshots["P002"] = &domain.Snapshot{PatientID: "P002", Questionnaires: sampleQuestionnaires()}
	svc := newTestReportService(t, snapshots, nil)

	resp, err := svc.BuildForPatient(context.Background(), "P002", nil, false)
	if err != nil {
		t.Fatalf("BuildForPatient: %v", err)
	}
	if resp.Meta.Patient != nil {
		t.Errorf("patient meta = %v, want nil", resp.Meta.Patient)
	}
}
