package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "liveaudit/internal/model"
)

// ReportStore persists and retrieves audit reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.AuditReport) (m.Path, error)
	LoadReport(path m.Path) (m.AuditReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore writing JSON files to disk.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// SaveReport writes the report as indented JSON under dir, named by the
// report timestamp, and returns the written path.
func (rs *reportStore) SaveReport(dir m.Path, report m.AuditReport) (m.Path, error) {
	if dir == "" {
		return "", fmt.Errorf("report directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	name := fmt.Sprintf("audit-%s.json", report.GeneratedAt.UTC().Format("20060102-150405"))
	path := filepath.Join(string(dir), name)

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads a previously saved report.
func (rs *reportStore) LoadReport(path m.Path) (m.AuditReport, error) {
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return m.AuditReport{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.AuditReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return m.AuditReport{}, fmt.Errorf("failed to decode report: %w", err)
	}

	return report, nil
}
