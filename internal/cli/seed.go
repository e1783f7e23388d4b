package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaisecz/questionnaire-report/internal/seed"
)

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write sample patients and snapshots to the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := seed.Run(cmd.Context(), a.snapshots, a.now(), a.logger); err != nil {
				return err
			}
			for _, p := range seed.Patients() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", p.ID, p.Metadata["name"])
			}
			return nil
		},
	}
}
