package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/blaisecz/questionnaire-report/internal/config"
	"github.com/blaisecz/questionnaire-report/internal/logging"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	repo := repository.NewSnapshotRepository(cfg.DataDir)
	if err := seed.Run(context.Background(), repo, time.Now(), logger); err != nil {
		logger.Fatal().Err(err).Msg("seed failed")
	}

	fmt.Printf("\nSample patients in %s:\n", cfg.DataDir)
	for _, p := range seed.Patients() {
		fmt.Printf("  %s (%v)\n", p.ID, p.Metadata["name"])
	}
}
