package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"liveaudit/internal/adapter"
	"liveaudit/internal/controller"
	m "liveaudit/internal/model"
)

// AuditArgs parameterizes a whole-project audit run.
type AuditArgs struct {
	Roots      []m.Path
	Config     adapter.Config
	ReportsDir m.Path // when set, the report is also persisted as JSON
}

// FixArgs parameterizes a fix run over the section-label rule.
type FixArgs struct {
	Roots   []m.Path
	Config  adapter.Config
	Force   bool
	Preview bool
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Audit(args AuditArgs) (m.AuditReport, error)
	Fix(args FixArgs) error
	List(roots []m.Path, exclude []string) ([]m.Path, error)
}

type workflow struct {
	fs        adapter.SourceFS
	store     adapter.ReportStore
	ui        controller.UI
	analyzers []Analyzer
}

// NewWorkflow creates a Workflow wired to the provided adapters and rules.
func NewWorkflow(fs adapter.SourceFS, store adapter.ReportStore, ui controller.UI, analyzers []Analyzer) Workflow {
	if len(analyzers) == 0 {
		analyzers = DefaultAnalyzers()
	}

	return &workflow{fs: fs, store: store, ui: ui, analyzers: analyzers}
}

// Audit scans the roots and runs every enabled rule over each file. Files
// are independent, stateless computations, so they are audited concurrently
// with no shared mutable state beyond the per-index result slot.
func (w *workflow) Audit(args AuditArgs) (m.AuditReport, error) {
	files, err := w.fs.Collect(args.Roots, args.Config.Exclude)
	if err != nil {
		return m.AuditReport{}, err
	}

	if err := w.ui.Start(len(files)); err != nil {
		return m.AuditReport{}, err
	}
	defer w.ui.Close()

	results := make([][]m.Violation, len(files))

	var eg errgroup.Group

	eg.SetLimit(args.Config.Parallel)

	for i, file := range files {
		eg.Go(func() error {
			violations := w.auditFile(file, args.Config)
			results[i] = violations
			w.ui.FileAudited(file, len(violations))

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return m.AuditReport{}, err
	}

	report := m.AuditReport{
		GeneratedAt: time.Now(),
		Scanned:     len(files),
	}

	for i, file := range files {
		if len(results[i]) == 0 {
			continue
		}

		report.Files = append(report.Files, m.FileReport{File: file, Violations: results[i]})
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].File < report.Files[j].File
	})

	if args.ReportsDir != "" {
		if _, err := w.store.SaveReport(args.ReportsDir, report); err != nil {
			return report, fmt.Errorf("failed to persist report: %w", err)
		}
	}

	return report, nil
}

// auditFile runs the enabled, non-ignored rules over a single file.
func (w *workflow) auditFile(file m.Path, cfg adapter.Config) []m.Violation {
	raw, err := w.fs.ReadFile(file)
	if err != nil {
		// Unreadable files are skipped, matching the opportunistic
		// contract of the analyzers.
		return nil
	}

	content := string(raw)
	ignore := fileIgnoreRule(m.NewSourceText(content))

	var violations []m.Violation

	for _, analyzer := range w.analyzers {
		name := analyzer.Name()

		if !cfg.RuleEnabled(name) || ignore.ignores(name) {
			continue
		}

		violations = append(violations, analyzer.Check(file, content, cfg.RuleConfig(name))...)
	}

	return violations
}

// Fix runs the section fixer over every candidate file. Preview mode renders
// the planned insertions without writing; apply mode rewrites the files in
// place.
func (w *workflow) Fix(args FixArgs) error {
	files, err := w.fs.Collect(args.Roots, args.Config.Exclude)
	if err != nil {
		return err
	}

	sectionsCfg := args.Config.RuleConfig(SectionsRuleName)
	required := requiredFromConfig(sectionsCfg)
	components := sectionsCfg.BoolValue("check_component_structure", false)
	style := labelStyleFromConfig(sectionsCfg)

	fixed := 0

	for _, file := range files {
		raw, err := w.fs.ReadFile(file)
		if err != nil {
			continue
		}

		outcome, err := FixSections(string(raw), required, FixOptions{
			Force:      args.Force,
			Preview:    args.Preview,
			FilePath:   file,
			Components: components,
			Style:      style,
		})

		switch {
		case errors.Is(err, ErrNotCandidate) || errors.Is(err, ErrNothingToFix):
			continue
		case err != nil:
			return fmt.Errorf("failed to fix %s: %w", file, err)
		}

		if args.Preview {
			if outcome.Preview != "" {
				w.ui.DisplayPreview(outcome.Preview)
			}

			continue
		}

		if !outcome.Changed {
			continue
		}

		info, err := w.fs.FileInfo(file)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", file, err)
		}

		if err := w.fs.WriteFile(file, []byte(outcome.Text.Render()), info.Mode()); err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}

		fixed++
	}

	if !args.Preview {
		w.ui.DisplayMessage("Inserted section labels in %d file(s)", fixed)
	}

	return nil
}

// List returns the source files an audit over the roots would visit.
func (w *workflow) List(roots []m.Path, exclude []string) ([]m.Path, error) {
	return w.fs.Collect(roots, exclude)
}
