package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "liveaudit/internal/model"
)

// CoverageRuleName identifies the test-coverage rule.
const CoverageRuleName = "coverage"

const defaultMinimumCoverage = 80.0

// coverageEntry is one file record inside an externally produced coverage
// report.
type coverageEntry struct {
	Path       string  `json:"path"`
	Percentage float64 `json:"percentage"`
}

type coverageReport struct {
	Files []coverageEntry `json:"files"`
}

// coverageAnalyzer compares per-file percentages from an external coverage
// report against a configured minimum. The report is produced by the test
// tooling, never by this tool; a missing or unreadable report yields no
// violations.
type coverageAnalyzer struct{}

// NewCoverageAnalyzer constructs the test-coverage rule.
func NewCoverageAnalyzer() Analyzer {
	return &coverageAnalyzer{}
}

func (a *coverageAnalyzer) Name() string {
	return CoverageRuleName
}

// Check looks the audited file up in the report. Recognized options:
// report, minimum, violation_level.
func (a *coverageAnalyzer) Check(filePath m.Path, _ string, cfg m.RuleConfig) []m.Violation {
	if filepath.Ext(string(filePath)) != ".ex" {
		return nil
	}

	reportPath := cfg.StringValue("report", "")
	if reportPath == "" {
		return nil
	}

	raw, err := os.ReadFile(reportPath)
	if err != nil {
		return nil
	}

	var report coverageReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil
	}

	minimum := cfg.FloatValue("minimum", defaultMinimumCoverage)
	normalized := filepath.ToSlash(string(filePath))

	for _, entry := range report.Files {
		if filepath.ToSlash(entry.Path) != normalized {
			continue
		}

		if entry.Percentage >= minimum {
			return nil
		}

		return []m.Violation{{
			Message:  fmt.Sprintf("test coverage is %.1f%%, minimum required is %.1f%%", entry.Percentage, minimum),
			File:     filePath,
			Severity: cfg.ViolationLevel(m.SeverityWarning),
			Rule:     CoverageRuleName,
		}}
	}

	return nil
}
