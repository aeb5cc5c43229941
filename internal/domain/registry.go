// Package domain contains the audit rules and the section-label pipeline:
// classify declarations, resolve required sections, plan insertions and
// apply them.
package domain

import (
	"regexp"
	"strings"

	m "liveaudit/internal/model"
)

// declarationPattern recognizes an Elixir def/defp line and captures the
// declared name.
var declarationPattern = regexp.MustCompile(`^\s*defp?\s+([a-z_][A-Za-z0-9_]*[?!]?)`)

// categoryByName resolves declaration names whose category would otherwise be
// ambiguous under the pattern rules. The lookup table wins over patterns.
var categoryByName = map[string]m.FunctionCategory{
	"mount":           m.CategoryLifecycle,
	"on_mount":        m.CategoryLifecycle,
	"handle_params":   m.CategoryLifecycle,
	"terminate":       m.CategoryLifecycle,
	"update":          m.CategoryLifecycle,
	"handle_event":    m.CategoryEventHandler,
	"handle_async":    m.CategoryEventHandler,
	"handle_info":     m.CategoryInfoHandler,
	"handle_call":     m.CategoryInfoHandler,
	"handle_cast":     m.CategoryInfoHandler,
	"handle_continue": m.CategoryInfoHandler,
	"render":          m.CategoryRendering,
}

// categoryRule pairs a category with a name pattern. Rules are tried in slice
// order and the first match wins, so priority is a visible artifact of the
// table, never an accident of map iteration.
type categoryRule struct {
	category m.FunctionCategory
	pattern  *regexp.Regexp
}

var categoryRules = []categoryRule{
	{m.CategoryLifecycle, regexp.MustCompile(`^(mount|unmount|terminate)$|_mounted$`)},
	{m.CategoryEventHandler, regexp.MustCompile(`_event$`)},
	{m.CategoryInfoHandler, regexp.MustCompile(`^handle_`)},
	{m.CategoryRendering, regexp.MustCompile(`^render_|_component$`)},
}

// classifyName returns the category for a declaration name.
func classifyName(name string) m.FunctionCategory {
	if category, ok := categoryByName[name]; ok {
		return category
	}

	for _, rule := range categoryRules {
		if rule.pattern.MatchString(name) {
			return rule.category
		}
	}

	return m.CategoryOther
}

// sectionByCategory and categoryBySection form the static bidirectional
// mapping between canonical section names and categories.
var sectionByCategory = map[m.FunctionCategory]m.SectionName{
	m.CategoryLifecycle:    m.SectionLifecycle,
	m.CategoryEventHandler: m.SectionEventHandlers,
	m.CategoryInfoHandler:  m.SectionInfoHandlers,
	m.CategoryRendering:    m.SectionRendering,
}

var categoryBySection = map[m.SectionName]m.FunctionCategory{
	m.SectionLifecycle:     m.CategoryLifecycle,
	m.SectionEventHandlers: m.CategoryEventHandler,
	m.SectionInfoHandlers:  m.CategoryInfoHandler,
	m.SectionRendering:     m.CategoryRendering,
}

// CategoryForSection maps a section name to its category. Unknown names map
// to CategoryOther and are never auto-required.
func CategoryForSection(name m.SectionName) m.FunctionCategory {
	if category, ok := categoryBySection[name]; ok {
		return category
	}

	return m.CategoryOther
}

// SectionForCategory maps a category to its canonical section name.
func SectionForCategory(category m.FunctionCategory) (m.SectionName, bool) {
	name, ok := sectionByCategory[category]

	return name, ok
}

// DefaultRequiredSections is the full canonical set, in conventional
// declaration order.
func DefaultRequiredSections() []m.SectionName {
	return []m.SectionName{
		m.SectionLifecycle,
		m.SectionEventHandlers,
		m.SectionInfoHandlers,
		m.SectionRendering,
	}
}

// labelPattern is the section-label line grammar: arbitrary leading
// whitespace, a comment marker, optional decorative filler, an all-uppercase
// phrase whose first and last tokens are letters, optional trailing filler
// and nothing else. Embedded mentions inside prose or string literals fail
// the full-line constraint.
var labelPattern = regexp.MustCompile(
	`^\s*#+\s*(?:[-=~*#]+\s*)*([A-Z][A-Z0-9]*(?: [A-Z0-9]+)*)\s*(?:[-=~*#]+\s*)*$`)

// matchLabel reports whether the line is a section label and returns the
// canonical phrase.
func matchLabel(line string) (m.SectionName, bool) {
	groups := labelPattern.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}

	phrase := strings.TrimSpace(groups[1])

	tokens := strings.Split(phrase, " ")
	last := tokens[len(tokens)-1]

	if last[0] < 'A' || last[0] > 'Z' {
		return "", false
	}

	return m.SectionName(phrase), true
}

// LabelStyle controls the decoration around an inserted label. The default
// renders symmetric dashes around the canonical name.
type LabelStyle struct {
	Marker string
	Fill   string
	Width  int
}

// DefaultLabelStyle is the decoration used when no template is configured.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{Marker: "#", Fill: "-", Width: 10}
}

// Render builds the full label line for a section at the given indentation.
func (ls LabelStyle) Render(indentation string, name m.SectionName) string {
	fill := strings.Repeat(ls.Fill, ls.Width)

	parts := []string{ls.Marker}
	if fill != "" {
		parts = append(parts, fill)
	}

	parts = append(parts, string(name))

	if fill != "" {
		parts = append(parts, fill)
	}

	return indentation + strings.Join(parts, " ")
}
