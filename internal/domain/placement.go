package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	m "liveaudit/internal/model"
)

// Rule names for the file-placement checks.
const (
	SchemaLocationRuleName = "schema_location"
	RepoCallRuleName       = "repo_calls"
)

var schemaUsePattern = regexp.MustCompile(`^\s*use\s+Ecto\.Schema\b|^\s*schema\s+"`)

// schemaLocationAnalyzer checks that Ecto-style schema modules live under an
// approved directory.
type schemaLocationAnalyzer struct{}

// NewSchemaLocationAnalyzer constructs the schema-location rule.
func NewSchemaLocationAnalyzer() Analyzer {
	return &schemaLocationAnalyzer{}
}

func (a *schemaLocationAnalyzer) Name() string {
	return SchemaLocationRuleName
}

// Check matches the file path against the configured directory fragments.
// Recognized options: allowed_paths, violation_level.
func (a *schemaLocationAnalyzer) Check(filePath m.Path, content string, cfg m.RuleConfig) []m.Violation {
	if filepath.Ext(string(filePath)) != ".ex" {
		return nil
	}

	if !containsPatternLine(content, schemaUsePattern) {
		return nil
	}

	allowed := cfg.StringList("allowed_paths")
	if len(allowed) == 0 {
		allowed = []string{"/schemas/"}
	}

	normalized := filepath.ToSlash(string(filePath))

	for _, fragment := range allowed {
		if strings.Contains(normalized, fragment) {
			return nil
		}
	}

	return []m.Violation{{
		Message:  fmt.Sprintf("schema module is outside the approved locations %v", allowed),
		File:     filePath,
		Severity: cfg.ViolationLevel(m.SeverityWarning),
		Rule:     SchemaLocationRuleName,
	}}
}

// repoCallAnalyzer flags direct repository calls in files outside the
// approved layers. The scan is a naive per-line substring match, not a
// semantic analysis.
type repoCallAnalyzer struct{}

// NewRepoCallAnalyzer constructs the repo-call-placement rule.
func NewRepoCallAnalyzer() Analyzer {
	return &repoCallAnalyzer{}
}

func (a *repoCallAnalyzer) Name() string {
	return RepoCallRuleName
}

// Check scans for the configured call marker. Recognized options: marker,
// allowed_paths, violation_level.
func (a *repoCallAnalyzer) Check(filePath m.Path, content string, cfg m.RuleConfig) []m.Violation {
	if filepath.Ext(string(filePath)) != ".ex" {
		return nil
	}

	marker := cfg.StringValue("marker", "Repo.")

	allowed := cfg.StringList("allowed_paths")
	if len(allowed) == 0 {
		allowed = []string{"/contexts/", "/repo/"}
	}

	normalized := filepath.ToSlash(string(filePath))

	for _, fragment := range allowed {
		if strings.Contains(normalized, fragment) {
			return nil
		}
	}

	src := m.NewSourceText(content)

	var violations []m.Violation

	for i := 0; i < src.Len(); i++ {
		line := src.Line(i)
		if !strings.Contains(line, marker) {
			continue
		}

		violations = append(violations, m.Violation{
			Message:  fmt.Sprintf("direct %s call outside the approved layers %v", strings.TrimSuffix(marker, "."), allowed),
			File:     filePath,
			Line:     i + 1,
			Severity: cfg.ViolationLevel(m.SeverityWarning),
			Rule:     RepoCallRuleName,
		})
	}

	return violations
}

func containsPatternLine(content string, pattern *regexp.Regexp) bool {
	src := m.NewSourceText(content)

	for i := 0; i < src.Len(); i++ {
		if pattern.MatchString(src.Line(i)) {
			return true
		}
	}

	return false
}
