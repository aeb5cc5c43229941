package controller

// Message types for the progress TUI.
type fileAuditedMsg struct {
	path       string
	violations int
}

type auditDoneMsg struct{}
