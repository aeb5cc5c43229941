package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "liveaudit/internal/model"
)

// SectionsRuleName identifies the section-label rule in configuration,
// --only filters and violation records.
const SectionsRuleName = "sections"

// sectionsAnalyzer flags lifecycle-style modules that lack their required
// section labels. It is the diagnostic twin of FixSections: both consume the
// same classification.
type sectionsAnalyzer struct{}

// NewSectionsAnalyzer constructs the section-label rule.
func NewSectionsAnalyzer() Analyzer {
	return &sectionsAnalyzer{}
}

func (a *sectionsAnalyzer) Name() string {
	return SectionsRuleName
}

// Check reports a single aggregated violation naming every missing section.
// Recognized options: required, violation_level, check_external_templates,
// check_component_structure.
func (a *sectionsAnalyzer) Check(filePath m.Path, content string, cfg m.RuleConfig) []m.Violation {
	if filepath.Ext(string(filePath)) != ".ex" {
		return nil
	}

	if !cfg.BoolValue("check_external_templates", true) && hasExternalTemplate(filePath) {
		return nil
	}

	src := m.NewSourceText(content)
	components := cfg.BoolValue("check_component_structure", false)

	if !IsCandidate(src, components) {
		return nil
	}

	required := requiredFromConfig(cfg)

	c := Classify(src)
	missing := MissingSections(c, ApplicableSections(c, required))

	if len(missing) == 0 {
		return nil
	}

	line := 0
	if first, ok := c.FirstDecl[CategoryForSection(missing[0])]; ok {
		line = first + 1
	}

	return []m.Violation{{
		Message:  missingSectionsMessage(missing),
		File:     filePath,
		Line:     line,
		Severity: cfg.ViolationLevel(m.SeverityWarning),
		Rule:     SectionsRuleName,
	}}
}

// requiredFromConfig reads the configured section names, defaulting to the
// full canonical set.
func requiredFromConfig(cfg m.RuleConfig) []m.SectionName {
	names := cfg.StringList("required")
	if len(names) == 0 {
		return DefaultRequiredSections()
	}

	required := make([]m.SectionName, 0, len(names))
	for _, name := range names {
		required = append(required, m.SectionName(name))
	}

	return required
}

// labelStyleFromConfig reads the label decoration options, falling back to
// the default symmetric dashes.
func labelStyleFromConfig(cfg m.RuleConfig) *LabelStyle {
	style := DefaultLabelStyle()
	style.Marker = cfg.StringValue("label_marker", style.Marker)
	style.Fill = cfg.StringValue("label_fill", style.Fill)
	style.Width = cfg.IntValue("label_width", style.Width)

	return &style
}

// missingSectionsMessage builds the aggregated violation message. Downstream
// tooling extracts the missing-section list from the bracketed, quoted,
// comma-joined tail, so its literal shape must remain stable.
func missingSectionsMessage(missing []m.SectionName) string {
	quoted := make([]string, 0, len(missing))
	for _, name := range missing {
		quoted = append(quoted, fmt.Sprintf("%q", string(name)))
	}

	return fmt.Sprintf("module lacks required section labels. Missing sections: [%s]",
		strings.Join(quoted, ", "))
}

// hasExternalTemplate reports whether a sibling .html.heex template exists
// for the module.
func hasExternalTemplate(filePath m.Path) bool {
	source := string(filePath)
	base := strings.TrimSuffix(filepath.Base(source), ".ex")
	template := filepath.Join(filepath.Dir(source), base+".html.heex")

	_, err := os.Stat(template)

	return err == nil
}
