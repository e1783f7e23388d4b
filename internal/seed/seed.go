package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

const (
	seededSnapshots = 3
	snapshotEvery   = 90 * 24 * time.Hour
)

// Patient is a sample patient written by Run.
type Patient struct {
	ID       string
	Metadata map[string]any
	// Skip lists instruments left out of the latest snapshot.
	Skip []string
}

// Patients are the sample patients. P003's latest snapshot has no HADS
// block so lenient and strict reports can be compared.
func Patients() []Patient {
	return []Patient{
		{
			ID: "P001",
			Metadata: map[string]any{
				"name": "Ana Novak", "age": 54.0, "sex": "F",
				"diabetes_type": "type 2", "clinician": "Dr. Horvat",
			},
		},
		{
			ID: "P002",
			Metadata: map[string]any{
				"name": "Marek Kral", "age": 37.0, "sex": "M",
				"diabetes_type": "type 1", "clinician": "Dr. Horvat",
			},
		},
		{
			ID: "P003",
			Metadata: map[string]any{
				"name": "Eva Dvorak", "age": 68.0, "sex": "F",
				"diabetes_type": "type 2", "clinician": "Dr. Svoboda",
			},
			Skip: []string{"HADS"},
		},
	}
}

// Run writes sample snapshots and metadata for every sample patient.
// Answers are drawn from a fixed seed, so running it again rewrites the
// same files.
func Run(ctx context.Context, repo repository.SnapshotRepository, now time.Time, logger zerolog.Logger) error {
	for i, p := range Patients() {
		rng := rand.New(rand.NewSource(int64(i + 1)))

		if err := repo.SaveMetadata(ctx, p.ID, &domain.PatientMetadata{Metadata: p.Metadata}); err != nil {
			return fmt.Errorf("failed to save metadata for %s: %w", p.ID, err)
		}

		for n := seededSnapshots - 1; n >= 0; n-- {
			date := now.Add(-time.Duration(n) * snapshotEvery).Format("2006-01-02")
			snap := &domain.Snapshot{
				PatientID:      p.ID,
				Date:           date,
				Questionnaires: Questionnaires(rng),
			}
			if n == 0 {
				for _, id := range p.Skip {
					delete(snap.Questionnaires, id)
				}
			}
			if err := repo.Save(ctx, snap); err != nil {
				return fmt.Errorf("failed to save snapshot %s/%s: %w", p.ID, date, err)
			}
		}

		logger.Info().Str("patient_id", p.ID).Int("snapshots", seededSnapshots).Msg("seeded patient")
	}

	logger.Info().Msg("seed completed")
	return nil
}

// Questionnaires draws one complete, valid set of answers for the
// built-in instruments.
func Questionnaires(rng *rand.Rand) map[string]map[string]any {
	q := map[string]map[string]any{
		"B1_Lifestyle": {
			"B1-1": fmt.Sprintf("%d", rng.Intn(8)),
			"B1-2": pick(rng, "No", "Yes, occasionally", "Yes, daily"),
			"B1-3": fmt.Sprintf("%d-%d", rng.Intn(5), 5+rng.Intn(5)),
		},
		"C_AreasOfConcern": {
			"C-1": pick(rng, "Blood sugar at night", "Foot care", "Weight"),
			"C-2": "",
		},
		"B2_EmotionalDistress": ints(rng, "B2-%d", 6, 4),
		"D1_FoodBehavior":      ints(rng, "C1-%d", 6, 4),
		"WHO5":                 ints(rng, "Q%d", 5, 5),
		"HADS":                 hads(rng),
		"PSQI":                 psqi(rng),
		"D4_DMAS": {
			"D4-1": pick(rng, "yes", "no"),
			"D4-2": pick(rng, "yes", "no"),
			"D4-3": pick(rng, "yes", "no"),
			"D4-4": map[string]any{
				"answer":  pick(rng, "Never", "Once in a while", "Sometimes", "Usually", "Always"),
				"comment": "Mostly the evening dose",
			},
			"D4-5": "",
			"D4-6": pick(rng, "yes", "no"),
			"D4-7": "",
		},
	}
	return q
}

func psqi(rng *rand.Rand) map[string]any {
	bedHour := 21 + rng.Intn(3)
	answers := map[string]any{
		scoring.PSQIBedtime:      fmt.Sprintf("%02d:%02d", bedHour, 15*rng.Intn(4)),
		scoring.PSQILatency:      map[string]any{"answer": float64(5 + 5*rng.Intn(12)), "comment": "Depends on the day"},
		scoring.PSQIWakeTime:     fmt.Sprintf("%02d:%02d", 6+rng.Intn(2), 15*rng.Intn(4)),
		scoring.PSQISleepHours:   fmt.Sprintf("%d-%d", 5+rng.Intn(2), 7),
		scoring.PSQIQuality:      float64(rng.Intn(4)),
		scoring.PSQIMedication:   float64(rng.Intn(4)),
		scoring.PSQIStayingAwake: float64(rng.Intn(4)),
		scoring.PSQIEnthusiasm:   float64(rng.Intn(4)),
	}
	for c := 'a'; c <= 'i'; c++ {
		answers[fmt.Sprintf("q5%c", c)] = float64(rng.Intn(4))
	}
	return answers
}

func hads(rng *rand.Rand) map[string]any {
	answers := ints(rng, "A%d", 7, 3)
	for k, v := range ints(rng, "D%d", 7, 3) {
		answers[k] = v
	}
	return answers
}

// ints answers count questions named by format with values in [0, hi].
func ints(rng *rand.Rand, format string, count, hi int) map[string]any {
	answers := make(map[string]any, count)
	for i := 1; i <= count; i++ {
		answers[fmt.Sprintf(format, i)] = float64(rng.Intn(hi + 1))
	}
	return answers
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}
