package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "liveaudit/internal/model"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ int) error {
	return nil
}

// FileAudited is a no-op for the plain reporter; results are printed in the
// final report.
func (s *SimpleUI) FileAudited(_ m.Path, _ int) {
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayReport prints every violation and a per-rule summary table.
func (s *SimpleUI) DisplayReport(report m.AuditReport) error {
	for _, file := range report.Files {
		if len(file.Violations) == 0 {
			continue
		}

		s.printf("%s\n", fileStyle.Render(string(file.File)))

		for _, violation := range file.Violations {
			location := ""
			if violation.Line > 0 {
				location = fmt.Sprintf(":%d", violation.Line)
			}

			s.printf("  %s%s [%s] %s (%s)\n",
				string(file.File), location,
				severityTag(violation.Severity),
				violation.Message, violation.Rule)
		}

		s.printf("\n")
	}

	s.printf("%s", summaryTable(report))
	s.printf("Scanned %d files: %d warning(s), %d error(s)\n",
		report.Scanned,
		report.Count(m.SeverityWarning),
		report.Count(m.SeverityError))

	return nil
}

// DisplayPreview prints a fixer preview verbatim.
func (s *SimpleUI) DisplayPreview(preview string) {
	s.printf("%s", preview)
}

// DisplayMessage prints a free-form message.
func (s *SimpleUI) DisplayMessage(format string, args ...any) {
	s.printf(format+"\n", args...)
}

func severityTag(severity m.Severity) string {
	if severity == m.SeverityError {
		return errorStyle.Render("error")
	}

	return warningStyle.Render("warning")
}

// summaryTable renders per-rule violation counts.
func summaryTable(report m.AuditReport) string {
	counts := make(map[string]int)

	for _, file := range report.Files {
		for _, violation := range file.Violations {
			counts[violation.Rule]++
		}
	}

	if len(counts) == 0 {
		return ""
	}

	rules := make([]string, 0, len(counts))
	for rule := range counts {
		rules = append(rules, rule)
	}

	sort.Strings(rules)

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Rule", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, rule := range rules {
		table.Append([]string{rule, fmt.Sprintf("%d", counts[rule])})
		total += counts[rule]
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total)})
	table.Render()

	return buf.String() + "\n"
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
