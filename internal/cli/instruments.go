package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/report"
)

func newInstrumentsCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "instruments",
		Aliases: []string{"ls"},
		Short:   "List the instrument catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := a.engine.Instruments()
			summaries := make([]domain.InstrumentSummary, 0, len(defs))
			for _, def := range defs {
				summaries = append(summaries, domain.NewInstrumentSummary(def))
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			case "table":
			default:
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}

			styles := newPrintStyles()
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(styles.border).
				Headers("ID", "TITLE", "KIND", "QUESTIONS", "SCALE").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return styles.header.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			for _, def := range defs {
				badge := "-"
				if bound, ok, err := def.SharedBound(); err == nil && ok {
					badge = report.BadgeText(bound, def.HigherIsWorse)
				}
				t.Row(def.ID, def.Title, string(def.Kind), fmt.Sprintf("%d", len(def.Questions)), badge)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table|json)")
	return cmd
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
