package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/report"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

const tracerName = "questionnaire-report/report"

// ReportService scores response snapshots and assembles report models.
type ReportService interface {
	// Score scores the answers to a single instrument.
	Score(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error)
	// Build scores every instrument of a submitted snapshot. In strict mode any
	// failed instrument fails the whole report with *domain.IncompleteReportError.
	Build(ctx context.Context, req *domain.ReportRequest, strict bool) (*domain.ReportResponse, error)
	// BuildForPatient builds a report from the patient's latest stored snapshot.
	BuildForPatient(ctx context.Context, patientID string, metadataKeys []string, strict bool) (*domain.ReportResponse, error)
}

type reportService struct {
	engine    *scoring.Engine
	builder   *report.Builder
	snapshots repository.SnapshotRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewReportService creates a new ReportService. snapshots may be nil when
// only submitted snapshots are scored.
func NewReportService(engine *scoring.Engine, snapshots repository.SnapshotRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		engine:    engine,
		builder:   report.NewBuilder(engine),
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *reportService) Score(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "ReportService.Score",
		trace.WithAttributes(
			attribute.String("instrument.id", instrumentID),
			attribute.Int("answers.count", len(answers)),
		),
	)
	defer span.End()

	scores, err := s.engine.Score(instrumentID, answers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, scoring.KindOf(err))
		return nil, err
	}

	resp := &domain.ScoreResponse{InstrumentID: instrumentID, Scores: scores}
	if def, _ := s.engine.Instrument(instrumentID); def.MaxScore > 0 {
		v, err := report.Standardize(instrumentID, scores)
		if err != nil {
			return nil, err
		}
		resp.StandardizedScore = &v
	}

	if outputJSON, err := json.Marshal(scores); err == nil {
		span.SetAttributes(attribute.String("score.output", string(outputJSON)))
	}
	return resp, nil
}

func (s *reportService) Build(ctx context.Context, req *domain.ReportRequest, strict bool) (*domain.ReportResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ReportService.Build",
		trace.WithAttributes(
			attribute.String("patient.id", req.PatientID),
			attribute.Int("questionnaires.count", len(req.Questionnaires)),
			attribute.Bool("report.strict", strict),
		),
	)
	defer span.End()

	answers, comments := domain.SplitAnswersAndComments(req.Questionnaires)
	results := s.scoreAll(ctx, answers)

	model, err := s.builder.Build(report.Input{Answers: answers, Comments: comments, Results: results})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return nil, fmt.Errorf("build report for %s: %w", req.PatientID, err)
	}

	span.SetAttributes(
		attribute.Int("report.records", len(model.Records)),
		attribute.Int("report.failures", len(model.Failures)),
	)

	if len(model.Failures) > 0 {
		if strict {
			span.SetStatus(codes.Error, domain.ErrIncompleteReport.Error())
			return nil, &domain.IncompleteReportError{Failures: model.Failures}
		}
		for _, f := range model.Failures {
			s.logger.Warn().
				Str("patient_id", req.PatientID).
				Str("instrument", f.InstrumentID).
				Str("field", f.Field).
				Str("kind", f.Kind).
				Msg("instrument left out of report")
		}
	}

	model.Meta = report.NewMeta(req.PatientID, s.now())
	if req.Metadata != nil {
		model.Meta.Patient = report.FilterPatientMeta(req.Metadata, req.MetadataKeys)
	}

	return &domain.ReportResponse{Model: *model}, nil
}

func (s *reportService) BuildForPatient(ctx context.Context, patientID string, metadataKeys []string, strict bool) (*domain.ReportResponse, error) {
	if s.snapshots == nil {
		return nil, fmt.Errorf("%w: no snapshot store configured", domain.ErrNotFound)
	}

	snap, err := s.snapshots.Latest(ctx, patientID)
	if err != nil {
		return nil, err
	}
	req := &domain.ReportRequest{Snapshot: *snap, MetadataKeys: metadataKeys}

	meta, err := s.snapshots.Metadata(ctx, patientID)
	switch {
	case err == nil:
		req.Metadata = meta.Metadata
	case errors.Is(err, domain.ErrNotFound):
		s.logger.Debug().Str("patient_id", patientID).Msg("no patient metadata")
	default:
		return nil, err
	}

	return s.Build(ctx, req, strict)
}

// scoreAll runs the engine inside its own span so scoring time shows up
// separately from report assembly.
func (s *reportService) scoreAll(ctx context.Context, answers map[string]scoring.Answers) []scoring.Result {
	_, span := otel.Tracer(tracerName).Start(ctx, "Engine.ScoreAll")
	defer span.End()

	results := s.engine.ScoreAll(answers)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	span.SetAttributes(
		attribute.Int("instruments.scored", len(results)-failed),
		attribute.Int("instruments.failed", failed),
	)
	return results
}
