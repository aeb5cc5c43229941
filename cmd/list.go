package cmd

import (
	"github.com/spf13/cobra"

	"liveaudit/internal/controller"
	"liveaudit/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the source files an audit would visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd)
			wf := domain.NewWorkflow(fs, store, ui, nil)

			files, err := wf.List(parsePaths(args), cfg.Exclude)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				cmd.Println("No source files found")

				return nil
			}

			for _, file := range files {
				cmd.Println(string(file))
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
