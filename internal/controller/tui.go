package controller

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "liveaudit/internal/model"
)

// TUI implements UI with a Bubble Tea progress view while files are being
// audited. The final report is rendered as plain text after the program
// exits, so it stays in the scrollback.
type TUI struct {
	cmd     *cobra.Command
	program *tea.Program
	done    chan struct{}
	once    sync.Once
	plain   *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		cmd:   cmd,
		plain: NewSimpleUI(cmd),
	}
}

// Start launches the progress program in the background.
func (t *TUI) Start(total int) error {
	model := newProgressModel(total)
	t.program = tea.NewProgram(model, tea.WithOutput(t.cmd.OutOrStdout()))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// FileAudited forwards per-file progress to the running program.
func (t *TUI) FileAudited(file m.Path, violations int) {
	if t.program == nil {
		return
	}

	t.program.Send(fileAuditedMsg{path: string(file), violations: violations})
}

// Close stops the progress program and waits for it to release the
// terminal.
func (t *TUI) Close() {
	t.once.Do(func() {
		if t.program == nil {
			return
		}

		t.program.Send(auditDoneMsg{})
		<-t.done
	})
}

// DisplayReport renders the aggregated audit results.
func (t *TUI) DisplayReport(report m.AuditReport) error {
	return t.plain.DisplayReport(report)
}

// DisplayPreview renders a fixer preview verbatim.
func (t *TUI) DisplayPreview(preview string) {
	t.plain.DisplayPreview(preview)
}

// DisplayMessage prints a free-form message.
func (t *TUI) DisplayMessage(format string, args ...any) {
	t.plain.DisplayMessage(format, args...)
}
