package cmd

import (
	"github.com/spf13/cobra"
)

var fixPreviewFlag bool
var fixForceFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Insert missing section labels",
		Long: `Fix scans the given paths for lifecycle-style modules and inserts the
section labels that are required but missing. Each label is placed
immediately before the first function of its category, aligned with that
function's indentation.

With --preview the planned insertions are rendered as a line-numbered diff
and no file is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runFix(cmd, parsePaths(args), cfg, fixForceFlag, fixPreviewFlag)
		},
	}

	cmd.Flags().BoolVar(&fixPreviewFlag, "preview", false, "show the planned label insertions without writing")
	cmd.Flags().BoolVar(&fixForceFlag, "force", false, "re-resolve all applicable sections, ignoring existing labels")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
