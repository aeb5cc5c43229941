package domain

import (
	m "liveaudit/internal/model"
)

// Analyzer is the uniform contract every audit rule implements. Check never
// performs writes; a file that a rule does not apply to yields an empty
// result, not an error.
type Analyzer interface {
	Name() string
	Check(filePath m.Path, content string, cfg m.RuleConfig) []m.Violation
}

// DefaultAnalyzers returns every built-in rule in its reporting order.
func DefaultAnalyzers() []Analyzer {
	return []Analyzer{
		NewSectionsAnalyzer(),
		NewFileSizeAnalyzer(),
		NewSchemaLocationAnalyzer(),
		NewRepoCallAnalyzer(),
		NewCoverageAnalyzer(),
		NewFactoryAnalyzer(),
	}
}
