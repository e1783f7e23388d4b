package repository

import (
	"context"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

type InstrumentRepository interface {
	List(ctx context.Context) ([]scoring.Instrument, error)
	GetByID(ctx context.Context, id string) (*scoring.Instrument, error)
}

type instrumentRepository struct {
	engine *scoring.Engine
}

// NewInstrumentRepository serves the definitions an engine was built from.
func NewInstrumentRepository(engine *scoring.Engine) InstrumentRepository {
	return &instrumentRepository{engine: engine}
}

func (r *instrumentRepository) List(ctx context.Context) ([]scoring.Instrument, error) {
	return r.engine.Instruments(), nil
}

func (r *instrumentRepository) GetByID(ctx context.Context, id string) (*scoring.Instrument, error) {
	def, ok := r.engine.Instrument(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &def, nil
}
