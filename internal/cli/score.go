package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/report"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

type scoreOptions struct {
	file     string
	format   string
	strict   bool
	metadata []string
}

func newScoreCommand(a *app) *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score [patient-id]",
		Short: "Build the report for a patient's latest snapshot",
		Long: `Score every instrument of a snapshot and print the report.

With a patient id the latest snapshot under the data directory is used and
the patient's metadata.json is attached. With --file a single snapshot file
is scored instead.`,
		Example: `  qscore score P001
  qscore score P001 --format json --metadata name,age
  qscore score --file snapshot.json --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScore(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Score a snapshot JSON file instead of stored responses")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format (table|json)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any instrument cannot be scored")
	cmd.Flags().StringSliceVar(&opts.metadata, "metadata", nil, "Patient metadata keys to keep (default all)")
	return cmd
}

func (a *app) runScore(cmd *cobra.Command, args []string, opts *scoreOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unknown format %q (want table or json)", opts.format)
	}
	strict := opts.strict || a.cfg.StrictReports

	var (
		resp *domain.ReportResponse
		err  error
	)
	switch {
	case opts.file != "":
		req, rerr := readSnapshotFile(opts.file)
		if rerr != nil {
			return rerr
		}
		req.MetadataKeys = opts.metadata
		resp, err = a.reports.Build(cmd.Context(), req, strict)
	case len(args) == 1:
		resp, err = a.reports.BuildForPatient(cmd.Context(), args[0], opts.metadata, strict)
	default:
		return fmt.Errorf("a patient id or --file is required")
	}

	var incomplete *domain.IncompleteReportError
	if errors.As(err, &incomplete) {
		printFailures(cmd.OutOrStdout(), incomplete.Failures)
		return err
	}
	if err != nil {
		return err
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printReport(cmd.OutOrStdout(), &resp.Model)
	return nil
}

func readSnapshotFile(path string) (*domain.ReportRequest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var req domain.ReportRequest
	if err := json.Unmarshal(content, &req); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(req.Questionnaires) == 0 {
		return nil, fmt.Errorf("%s: %w: no questionnaires", path, domain.ErrInvalidInput)
	}
	return &req, nil
}

func printReport(w io.Writer, m *report.Model) {
	styles := newPrintStyles()

	fmt.Fprintln(w, styles.header.Render("Report "+m.Meta.ReportID))
	fmt.Fprintf(w, "%s %s   %s %s\n",
		styles.dim.Render("patient"), m.Meta.PatientID,
		styles.dim.Render("generated"), m.Meta.Generated)
	for _, k := range sortedKeys(m.Meta.Patient) {
		fmt.Fprintf(w, "  %s: %v\n", k, m.Meta.Patient[k])
	}
	fmt.Fprintln(w)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.border).
		Headers("INSTRUMENT", "TITLE", "OVERALL", "STANDARDIZED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, rec := range m.Records {
		overall := "-"
		if v, ok := rec.Scores[scoring.OverallScore]; ok {
			overall = formatScore(v)
		}
		standardized := "-"
		if rec.Standardized != nil {
			standardized = fmt.Sprintf("%.1f", *rec.Standardized)
		}
		t.Row(rec.InstrumentID, rec.Title, overall, standardized)
	}
	fmt.Fprintln(w, t.Render())

	if len(m.Failures) > 0 {
		fmt.Fprintln(w)
		printFailures(w, m.Failures)
	}
}

func printFailures(w io.Writer, failures []report.Failure) {
	styles := newPrintStyles()
	fmt.Fprintln(w, styles.warn.Render(fmt.Sprintf("%d instrument(s) not scored:", len(failures))))
	for _, f := range failures {
		where := f.InstrumentID
		if f.Field != "" {
			where += "." + f.Field
		}
		fmt.Fprintf(w, "  %s %s %s\n", styles.fail.Render(f.Kind), where, styles.dim.Render(f.Message))
	}
}

func formatScore(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
