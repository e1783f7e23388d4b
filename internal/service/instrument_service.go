package service

import (
	"context"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

type InstrumentService interface {
	List(ctx context.Context) ([]domain.InstrumentSummary, error)
	GetByID(ctx context.Context, id string) (*scoring.Instrument, error)
}

type instrumentService struct {
	repo repository.InstrumentRepository
}

func NewInstrumentService(repo repository.InstrumentRepository) InstrumentService {
	return &instrumentService{repo: repo}
}

func (s *instrumentService) List(ctx context.Context) ([]domain.InstrumentSummary, error) {
	defs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.InstrumentSummary, 0, len(defs))
	for _, def := range defs {
		out = append(out, domain.NewInstrumentSummary(def))
	}
	return out, nil
}

func (s *instrumentService) GetByID(ctx context.Context, id string) (*scoring.Instrument, error) {
	return s.repo.GetByID(ctx, id)
}
