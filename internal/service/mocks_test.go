package service

import (
	"context"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

// MockSnapshotRepository is a mock implementation of SnapshotRepository
type MockSnapshotRepository struct {
	snapshots map[string]*domain.Snapshot
	metadata  map[string]*domain.PatientMetadata
	err       error
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		snapshots: make(map[string]*domain.Snapshot),
		metadata:  make(map[string]*domain.PatientMetadata),
	}
}

func (m *MockSnapshotRepository) Latest(ctx context.Context, patientID string) (*domain.Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	snap, ok := m.snapshots[patientID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return snap, nil
}

func (m *MockSnapshotRepository) Metadata(ctx context.Context, patientID string) (*domain.PatientMetadata, error) {
	if m.err != nil {
		return nil, m.err
	}
	meta, ok := m.metadata[patientID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return meta, nil
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if m.err != nil {
		return m.err
	}
	m.snapshots[snapshot.PatientID] = snapshot
	return nil
}

func (m *MockSnapshotRepository) SaveMetadata(ctx context.Context, patientID string, meta *domain.PatientMetadata) error {
	if m.err != nil {
		return m.err
	}
	m.metadata[patientID] = meta
	return nil
}

func (m *MockSnapshotRepository) ListPatients(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var ids []string
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return ids, nil
}

// MockInstrumentRepository is a mock implementation of InstrumentRepository
type MockInstrumentRepository struct {
	defs []scoring.Instrument
	err  error
}

func (m *MockInstrumentRepository) List(ctx context.Context) ([]scoring.Instrument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.defs, nil
}

func (m *MockInstrumentRepository) GetByID(ctx context.Context, id string) (*scoring.Instrument, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.defs {
		if m.defs[i].ID == id {
			return &m.defs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
