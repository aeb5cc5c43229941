package domain

import (
	"regexp"
	"strings"

	m "liveaudit/internal/model"
)

// Classification is the classifier's view of one source file: which function
// categories occur, where each category first occurs, and which section
// labels are already present.
type Classification struct {
	Categories  map[m.FunctionCategory]struct{}
	FirstDecl   map[m.FunctionCategory]int
	Occurrences []m.SectionOccurrence
}

// HasCategory reports whether the file declares at least one function of the
// given category.
func (c Classification) HasCategory(category m.FunctionCategory) bool {
	_, ok := c.Categories[category]

	return ok
}

// HasSection reports whether a label with the given canonical name exists.
func (c Classification) HasSection(name m.SectionName) bool {
	for _, occurrence := range c.Occurrences {
		if occurrence.Name == name {
			return true
		}
	}

	return false
}

// candidatePatterns is the heuristic disjunction that marks a file as a
// lifecycle-style module. It is deliberately not exhaustive; files that do
// not match simply yield empty results.
var candidatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*defp?\s+(mount|render|handle_event)\b`),
	regexp.MustCompile(`^\s*use\s+[A-Z][\w.]*(Web)?\s*,\s*:live_(view|component)\b`),
	regexp.MustCompile(`^\s*use\s+Phoenix\.Live(View|Component)\b`),
}

var componentPattern = regexp.MustCompile(`^\s*use\s+Phoenix\.Component\b|^\s*(attr|slot)\s`)

// heredocDelimiter marks the start or end of a multi-line quoted block.
const heredocDelimiter = `"""`

// IsCandidate reports whether the content looks like a lifecycle-style
// module. When components is true, function-component modules also qualify.
func IsCandidate(src m.SourceText, components bool) bool {
	for i := 0; i < src.Len(); i++ {
		line := src.Line(i)

		for _, pattern := range candidatePatterns {
			if pattern.MatchString(line) {
				return true
			}
		}

		if components && componentPattern.MatchString(line) {
			return true
		}
	}

	return false
}

// Classify performs a single linear pass over the lines. Each line is tried
// against the category rules in fixed priority order (first match wins) and,
// independently, against the label grammar. A single line is never counted as
// both a declaration and a label. Lines inside multi-line quoted blocks are
// skipped entirely so label-like text embedded in templates or docs is never
// misdetected.
func Classify(src m.SourceText) Classification {
	result := Classification{
		Categories: make(map[m.FunctionCategory]struct{}),
		FirstDecl:  make(map[m.FunctionCategory]int),
	}

	inHeredoc := false

	for i := 0; i < src.Len(); i++ {
		line := src.Line(i)

		if inHeredoc {
			if strings.Count(line, heredocDelimiter)%2 == 1 {
				inHeredoc = false
			}

			continue
		}

		if category, ok := classifyDeclaration(line); ok {
			result.Categories[category] = struct{}{}

			if _, seen := result.FirstDecl[category]; !seen {
				result.FirstDecl[category] = i
			}
		} else if name, ok := matchLabel(line); ok {
			result.Occurrences = append(result.Occurrences, m.SectionOccurrence{
				LineIndex: i,
				RawLabel:  line,
				Name:      name,
			})
		}

		if strings.Count(line, heredocDelimiter)%2 == 1 {
			inHeredoc = true
		}
	}

	return result
}

// classifyDeclaration tags a def/defp line with its function category.
func classifyDeclaration(line string) (m.FunctionCategory, bool) {
	groups := declarationPattern.FindStringSubmatch(line)
	if groups == nil {
		return m.CategoryOther, false
	}

	return classifyName(groups[1]), true
}

// Indentation returns the literal leading-whitespace run of a line.
func Indentation(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}

	return line
}
