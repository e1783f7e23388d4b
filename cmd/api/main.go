// Questionnaire Report API
//
// REST API for scoring patient questionnaires and building clinical reports.
//
//	@title			Questionnaire Report API
//	@version		1.0
//	@description	Scores patient questionnaire snapshots (PSQI, HADS, WHO-5, DMAS and more) and assembles clinical report models.
//
//	@BasePath	/v1
//
//	@tag.name			instruments
//	@tag.description	Instrument catalog and single-instrument scoring
//
//	@tag.name			reports
//	@tag.description	Report models built from response snapshots
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/blaisecz/questionnaire-report/internal/api"
	"github.com/blaisecz/questionnaire-report/internal/api/handler"
	"github.com/blaisecz/questionnaire-report/internal/catalog"
	"github.com/blaisecz/questionnaire-report/internal/config"
	"github.com/blaisecz/questionnaire-report/internal/logging"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
	"github.com/blaisecz/questionnaire-report/internal/seed"
	"github.com/blaisecz/questionnaire-report/internal/service"
	"github.com/blaisecz/questionnaire-report/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialise tracing")
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error().Err(err).Msg("tracer shutdown failed")
		}
	}()

	// Load instrument catalog
	loader, err := catalog.NewLoader()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to compile instrument schema")
	}
	defs, err := loader.Load(cfg.InstrumentsDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.InstrumentsDir).Msg("failed to load instruments")
	}
	engine, err := scoring.NewEngine(defs...)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid instrument catalog")
	}
	logger.Info().Int("instruments", len(defs)).Msg("instrument catalog loaded")

	// Initialize repositories
	instrumentRepo := repository.NewInstrumentRepository(engine)
	snapshotRepo := repository.NewSnapshotRepository(cfg.DataDir)

	if cfg.Seed {
		logger.Info().Str("data_dir", cfg.DataDir).Msg("seeding sample snapshots (SEED=true)")
		if err := seed.Run(ctx, snapshotRepo, time.Now(), logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	// Initialize services
	instrumentService := service.NewInstrumentService(instrumentRepo)
	reportService := service.NewReportService(engine, snapshotRepo, logger)

	// Initialize handlers
	instrumentHandler := handler.NewInstrumentHandler(instrumentService, reportService)
	reportHandler := handler.NewReportHandler(reportService, cfg.StrictReports)

	// Setup router
	router := api.NewRouter(instrumentHandler, reportHandler, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
