package seed

import (
	"context"
	"io"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

func TestQuestionnaires_ScoreCleanly(t *testing.T) {
	engine, err := scoring.NewEngine(scoring.Builtin()...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	for seed := int64(1); seed <= 20; seed++ {
		answers, _ := domain.SplitAnswersAndComments(Questionnaires(rand.New(rand.NewSource(seed))))
		for _, res := range engine.ScoreAll(answers) {
			if res.Err != nil {
				t.Errorf("seed %d: %s failed: %v", seed, res.InstrumentID, res.Err)
			}
		}
	}
}

func TestQuestionnaires_Deterministic(t *testing.T) {
	a := Questionnaires(rand.New(rand.NewSource(7)))
	b := Questionnaires(rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different answers")
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSnapshotRepository(t.TempDir())
	now := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

	if err := Run(ctx, repo, now, zerolog.New(io.Discard)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Second run rewrites the same files
	if err := Run(ctx, repo, now, zerolog.New(io.Discard)); err != nil {
		t.Fatalf("Run() second pass error = %v", err)
	}

	patients, err := repo.ListPatients(ctx)
	if err != nil {
		t.Fatalf("ListPatients() error = %v", err)
	}
	if want := []string{"P001", "P002", "P003"}; !reflect.DeepEqual(patients, want) {
		t.Errorf("ListPatients() = %v, want %v", patients, want)
	}

	latest, err := repo.Latest(ctx, "P003")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.Date != "2025-03-04" {
		t.Errorf("latest date = %s, want 2025-03-04", latest.Date)
	}
	if _, ok := latest.Questionnaires["HADS"]; ok {
		t.Error("P003 latest snapshot should not contain HADS")
	}

	meta, err := repo.Metadata(ctx, "P001")
	if err != nil {
		t.Fatalf("Metadata() error = %v", err)
	}
	if meta.Metadata["name"] != "Ana Novak" {
		t.Errorf("metadata name = %v", meta.Metadata["name"])
	}
}
