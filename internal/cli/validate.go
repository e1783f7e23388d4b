package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/blaisecz/questionnaire-report/internal/catalog"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|dir>...",
		Short: "Check instrument definition files",
		Long: `Check instrument definition files against the schema and the scoring rules.
Directories are searched for ` + catalog.DefinitionPattern + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandDefinitionArgs(args)
			if err != nil {
				return err
			}

			styles := newPrintStyles()
			out := cmd.OutOrStdout()
			failed := 0
			for _, file := range files {
				def, err := a.loader.LoadFile(file)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s %s\n", styles.fail.Render("FAIL"), err)
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", styles.ok.Render("ok  "), file,
					styles.dim.Render(fmt.Sprintf("(%s, %d questions)", def.ID, len(def.Questions))))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d definition file(s) invalid", failed, len(files))
			}
			return nil
		},
	}
}

// expandDefinitionArgs replaces directory arguments with the definition
// files below them.
func expandDefinitionArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(arg), catalog.DefinitionPattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", arg, err)
		}
		for _, m := range matches {
			files = append(files, filepath.Join(arg, filepath.FromSlash(m)))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no definition files found")
	}
	return files, nil
}
