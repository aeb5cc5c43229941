package domain

import (
	"fmt"
	"strings"

	m "liveaudit/internal/model"
)

// FactoryRuleName identifies the factory-usage rule.
const FactoryRuleName = "factory_usage"

// factoryAnalyzer flags test files that insert records directly instead of
// going through the project's factories or fixtures.
type factoryAnalyzer struct{}

// NewFactoryAnalyzer constructs the factory-usage rule.
func NewFactoryAnalyzer() Analyzer {
	return &factoryAnalyzer{}
}

func (a *factoryAnalyzer) Name() string {
	return FactoryRuleName
}

// Check scans test files for disallowed call markers. Recognized options:
// disallowed, suggestion, violation_level.
func (a *factoryAnalyzer) Check(filePath m.Path, content string, cfg m.RuleConfig) []m.Violation {
	path := string(filePath)
	if !strings.HasSuffix(path, "_test.exs") {
		return nil
	}

	disallowed := cfg.StringList("disallowed")
	if len(disallowed) == 0 {
		disallowed = []string{"Repo.insert"}
	}

	suggestion := cfg.StringValue("suggestion", "use a factory or fixture instead")

	src := m.NewSourceText(content)

	var violations []m.Violation

	for i := 0; i < src.Len(); i++ {
		line := src.Line(i)

		for _, marker := range disallowed {
			if !strings.Contains(line, marker) {
				continue
			}

			violations = append(violations, m.Violation{
				Message:  fmt.Sprintf("test calls %s directly, %s", marker, suggestion),
				File:     filePath,
				Line:     i + 1,
				Severity: cfg.ViolationLevel(m.SeverityWarning),
				Rule:     FactoryRuleName,
			})

			break
		}
	}

	return violations
}
