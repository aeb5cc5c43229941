package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "liveaudit/internal/model"
)

// FileSizeRuleName identifies the file-size rule.
const FileSizeRuleName = "file_size"

const defaultMaxLines = 400

// fileSizeAnalyzer flags source files that exceed a configured line count.
type fileSizeAnalyzer struct{}

// NewFileSizeAnalyzer constructs the file-size rule.
func NewFileSizeAnalyzer() Analyzer {
	return &fileSizeAnalyzer{}
}

func (a *fileSizeAnalyzer) Name() string {
	return FileSizeRuleName
}

// Check counts lines. Recognized options: max_lines, violation_level.
func (a *fileSizeAnalyzer) Check(filePath m.Path, content string, cfg m.RuleConfig) []m.Violation {
	ext := filepath.Ext(string(filePath))
	if ext != ".ex" && ext != ".exs" {
		return nil
	}

	maxLines := cfg.IntValue("max_lines", defaultMaxLines)

	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") && content != "" {
		lines++
	}

	if lines <= maxLines {
		return nil
	}

	return []m.Violation{{
		Message:  fmt.Sprintf("file has %d lines, maximum allowed is %d", lines, maxLines),
		File:     filePath,
		Severity: cfg.ViolationLevel(m.SeverityWarning),
		Rule:     FileSizeRuleName,
	}}
}
