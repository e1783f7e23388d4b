package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/blaisecz/questionnaire-report/internal/domain"
)

const (
	responsesDir     = "responses"
	metadataFile     = "metadata.json"
	snapshotPattern  = "????-??-??.json"
	snapshotFileMode = 0o644
)

var patientIDPattern = regexp.MustCompile(`^P[0-9A-Za-z]+$`)

// SnapshotRepository stores response snapshots as dated JSON files under
// <data>/responses/<patient>/, next to the patient's metadata.json.
type SnapshotRepository interface {
	Latest(ctx context.Context, patientID string) (*domain.Snapshot, error)
	Metadata(ctx context.Context, patientID string) (*domain.PatientMetadata, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	SaveMetadata(ctx context.Context, patientID string, meta *domain.PatientMetadata) error
	ListPatients(ctx context.Context) ([]string, error)
}

type snapshotRepository struct {
	root string
}

func NewSnapshotRepository(dataDir string) SnapshotRepository {
	return &snapshotRepository{root: filepath.Join(dataDir, responsesDir)}
}

// Latest loads the snapshot with the greatest YYYY-MM-DD file name.
// metadata.json never matches the pattern.
func (r *snapshotRepository) Latest(ctx context.Context, patientID string) (*domain.Snapshot, error) {
	dir, err := r.patientDir(patientID)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(dir), snapshotPattern)
	if err != nil {
		return nil, fmt.Errorf("glob snapshots for %s: %w", patientID, err)
	}
	if len(matches) == 0 {
		return nil, domain.ErrNotFound
	}
	sort.Strings(matches)
	latest := matches[len(matches)-1]

	var snap domain.Snapshot
	if err := readJSON(filepath.Join(dir, latest), &snap); err != nil {
		return nil, err
	}
	if snap.PatientID == "" {
		snap.PatientID = patientID
	}
	if snap.Date == "" {
		snap.Date = strings.TrimSuffix(latest, path.Ext(latest))
	}
	return &snap, nil
}

func (r *snapshotRepository) Metadata(ctx context.Context, patientID string) (*domain.PatientMetadata, error) {
	dir, err := r.patientDir(patientID)
	if err != nil {
		return nil, err
	}
	var meta domain.PatientMetadata
	if err := readJSON(filepath.Join(dir, metadataFile), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *snapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot.Date == "" {
		return fmt.Errorf("%w: snapshot date is required", domain.ErrInvalidInput)
	}
	if ok, _ := doublestar.Match(snapshotPattern, snapshot.Date+".json"); !ok {
		return fmt.Errorf("%w: snapshot date %q is not YYYY-MM-DD", domain.ErrInvalidInput, snapshot.Date)
	}
	dir, err := r.ensurePatientDir(snapshot.PatientID)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, snapshot.Date+".json"), snapshot)
}

func (r *snapshotRepository) SaveMetadata(ctx context.Context, patientID string, meta *domain.PatientMetadata) error {
	dir, err := r.ensurePatientDir(patientID)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, metadataFile), meta)
}

// ListPatients returns every patient directory that holds at least one snapshot.
func (r *snapshotRepository) ListPatients(ctx context.Context) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(r.root), "*/"+snapshotPattern)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("glob patients: %w", err)
	}

	seen := make(map[string]bool)
	patients := []string{}
	for _, m := range matches {
		id := path.Dir(m)
		if !seen[id] {
			seen[id] = true
			patients = append(patients, id)
		}
	}
	sort.Strings(patients)
	return patients, nil
}

func (r *snapshotRepository) patientDir(patientID string) (string, error) {
	if !patientIDPattern.MatchString(patientID) {
		return "", fmt.Errorf("%w: patient id %q", domain.ErrInvalidInput, patientID)
	}
	dir := filepath.Join(r.root, patientID)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return dir, nil
}

func (r *snapshotRepository) ensurePatientDir(patientID string) (string, error) {
	if !patientIDPattern.MatchString(patientID) {
		return "", fmt.Errorf("%w: patient id %q", domain.ErrInvalidInput, patientID)
	}
	dir := filepath.Join(r.root, patientID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func readJSON(file string, v any) error {
	content, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(file), err)
	}
	return nil
}

func writeJSON(file string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, append(content, '\n'), snapshotFileMode)
}
