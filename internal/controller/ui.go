// Package controller provides output adapters for displaying audit results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "liveaudit/internal/model"
)

// UI defines the interface for displaying audit progress and results.
// Implementations can use different output methods (simple text, TUI, JSON).
type UI interface {
	// Start prepares the UI for a run over total files.
	Start(total int) error
	// FileAudited reports progress for a single finished file.
	FileAudited(file m.Path, violations int)
	// Close finalizes the UI.
	Close()
	// DisplayReport renders the aggregated audit results.
	DisplayReport(report m.AuditReport) error
	// DisplayPreview renders a fixer preview verbatim.
	DisplayPreview(preview string)
	// DisplayMessage prints a free-form message.
	DisplayMessage(format string, args ...any)
}

// IsTTY reports whether the writer is attached to a character device.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

// NewUI selects the TUI when attached to a terminal and the plain console
// reporter otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
