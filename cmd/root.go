// Package cmd provides the root command and CLI setup for liveaudit.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"liveaudit/internal/adapter"
	"liveaudit/internal/controller"
	"liveaudit/internal/domain"
	m "liveaudit/internal/model"
)

var fs adapter.SourceFS
var store adapter.ReportStore

func init() {
	fs = adapter.NewLocalSourceFS()
	store = adapter.NewReportStore()
}

var strictFlag bool
var onlyFlag []string
var parallelFlag int
var excludeFlags []string
var configFlag string
var jsonFlag bool
var reportsFlag string
var fixFlag bool
var previewFlag bool
var forceFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveaudit [paths...]",
		Short: "Audit LiveView modules for structural conventions",
		Long: `Liveaudit checks Phoenix LiveView-style modules against a set of
organizational conventions: labeled function sections, file size, schema
placement, repository-call placement, test coverage and factory usage.

The section-label rule can also fix files, inserting the missing labels
before the first function of each category.

Supports path patterns:
  - lib/...        recursively scan the lib directory
  - lib/a lib/b    scan multiple directories`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if fixFlag || previewFlag {
				return runFix(cmd, paths, cfg, forceFlag, previewFlag)
			}

			return runAudit(cmd, paths, cfg)
		},
	}

	cmd.Flags().BoolVar(&strictFlag, "strict", false, "exit non-zero when any error-level violation exists")
	cmd.Flags().StringSliceVar(&onlyFlag, "only", nil, "run only the named rules (comma-separated)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel workers for the file scan")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to the configuration file (default: search for .liveaudit.yml)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&reportsFlag, "reports", "", "directory to persist the JSON report into")
	cmd.Flags().BoolVar(&fixFlag, "fix", false, "insert missing section labels instead of reporting")
	cmd.Flags().BoolVar(&previewFlag, "preview", false, "show the planned label insertions without writing")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "re-resolve all applicable sections, ignoring existing labels")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// loadConfig merges defaults, the project file and the CLI flags.
func loadConfig() (adapter.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return adapter.Config{}, err
	}

	cfg, err := adapter.LoadConfig(fs, configFlag, wd)
	if err != nil {
		return cfg, err
	}

	if strictFlag {
		cfg.Strict = true
	}

	if len(onlyFlag) > 0 {
		cfg.Only = onlyFlag
	}

	if parallelFlag > 0 {
		cfg.Parallel = parallelFlag
	}

	cfg.Exclude = append(cfg.Exclude, excludeFlags...)

	return cfg, nil
}

func newUI(cmd *cobra.Command) controller.UI {
	if jsonFlag {
		// JSON output must stay machine-readable; no progress rendering.
		return controller.NewSimpleUI(cmd)
	}

	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
}

func runAudit(cmd *cobra.Command, paths []m.Path, cfg adapter.Config) error {
	ui := newUI(cmd)
	wf := domain.NewWorkflow(fs, store, ui, nil)

	report, err := wf.Audit(domain.AuditArgs{
		Roots:      paths,
		Config:     cfg,
		ReportsDir: m.Path(reportsFlag),
	})
	if err != nil {
		return err
	}

	if jsonFlag {
		raw, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(string(raw))
	} else if err := ui.DisplayReport(report); err != nil {
		return err
	}

	if cfg.Strict && report.Count(m.SeverityError) > 0 {
		return fmt.Errorf("%d error-level violation(s) found", report.Count(m.SeverityError))
	}

	return nil
}

func runFix(cmd *cobra.Command, paths []m.Path, cfg adapter.Config, force, preview bool) error {
	ui := controller.NewSimpleUI(cmd)
	wf := domain.NewWorkflow(fs, store, ui, nil)

	return wf.Fix(domain.FixArgs{
		Roots:   paths,
		Config:  cfg,
		Force:   force,
		Preview: preview,
	})
}
