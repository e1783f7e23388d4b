// Package cli implements the qscore command: offline scoring of stored
// snapshots, catalog inspection and definition file checks.
package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blaisecz/questionnaire-report/internal/catalog"
	"github.com/blaisecz/questionnaire-report/internal/config"
	"github.com/blaisecz/questionnaire-report/internal/logging"
	"github.com/blaisecz/questionnaire-report/internal/repository"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
	"github.com/blaisecz/questionnaire-report/internal/service"
)

// app is the state shared by subcommands once the root has loaded config.
type app struct {
	v         *viper.Viper
	cfg       *config.Config
	logger    zerolog.Logger
	loader    *catalog.Loader
	engine    *scoring.Engine
	snapshots repository.SnapshotRepository
	reports   service.ReportService
	now       func() time.Time
}

// NewRootCommand builds the qscore command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), now: time.Now}

	root := &cobra.Command{
		Use:   "qscore",
		Short: "Score patient questionnaires and build clinical reports",
		Long: `qscore scores stored questionnaire snapshots (PSQI, HADS, WHO-5, DMAS and
the other catalog instruments) and prints the resulting report.

Snapshots are read from <data>/responses/<patient>/<YYYY-MM-DD>.json. Extra
instrument definitions in YAML or JSON are overlaid on the built-in catalog
when --instruments points at a directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("data", "", "Data directory holding responses/ (default \"data\")")
	flags.String("instruments", "", "Directory of extra instrument definitions")
	flags.String("log-level", "", "Log level (trace|debug|info|warn|error)")

	_ = a.v.BindPFlag("DATA_DIR", flags.Lookup("data"))
	_ = a.v.BindPFlag("INSTRUMENTS_DIR", flags.Lookup("instruments"))
	_ = a.v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	root.AddCommand(
		newScoreCommand(a),
		newInstrumentsCommand(a),
		newValidateCommand(a),
		newSeedCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadWith(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, "console")

	loader, err := catalog.NewLoader()
	if err != nil {
		return fmt.Errorf("compile instrument schema: %w", err)
	}
	a.loader = loader

	defs, err := loader.Load(cfg.InstrumentsDir)
	if err != nil {
		return fmt.Errorf("load instruments: %w", err)
	}
	engine, err := scoring.NewEngine(defs...)
	if err != nil {
		return err
	}
	a.engine = engine
	a.snapshots = repository.NewSnapshotRepository(cfg.DataDir)
	a.reports = service.NewReportService(engine, a.snapshots, a.logger)

	a.logger.Debug().
		Str("data_dir", cfg.DataDir).
		Int("instruments", len(defs)).
		Msg("qscore ready")
	return nil
}
