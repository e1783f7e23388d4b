package handler

import (
	"context"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

// MockInstrumentService is a mock implementation of InstrumentService
type MockInstrumentService struct {
	listFunc    func(ctx context.Context) ([]domain.InstrumentSummary, error)
	getByIDFunc func(ctx context.Context, id string) (*scoring.Instrument, error)
}

func (m *MockInstrumentService) List(ctx context.Context) ([]domain.InstrumentSummary, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []domain.InstrumentSummary{}, nil
}

func (m *MockInstrumentService) GetByID(ctx context.Context, id string) (*scoring.Instrument, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	scoreFunc           func(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error)
	buildFunc           func(ctx context.Context, req *domain.ReportRequest, strict bool) (*domain.ReportResponse, error)
	buildForPatientFunc func(ctx context.Context, patientID string, metadataKeys []string, strict bool) (*domain.ReportResponse, error)
}

func (m *MockReportService) Score(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error) {
	if m.scoreFunc != nil {
		return m.scoreFunc(ctx, instrumentID, answers)
	}
	return &domain.ScoreResponse{InstrumentID: instrumentID, Scores: scoring.Scores{}}, nil
}

func (m *MockReportService) Build(ctx context.Context, req *domain.ReportRequest, strict bool) (*domain.ReportResponse, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, req, strict)
	}
	return &domain.ReportResponse{}, nil
}

func (m *MockReportService) BuildForPatient(ctx context.Context, patientID string, metadataKeys []string, strict bool) (*domain.ReportResponse, error) {
	if m.buildForPatientFunc != nil {
		return m.buildForPatientFunc(ctx, patientID, metadataKeys, strict)
	}
	return &domain.ReportResponse{}, nil
}
