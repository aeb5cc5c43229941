package domain

import (
	"strings"

	m "liveaudit/internal/model"
)

// ignoreRule records which audit rules a directive suppresses.
type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(ruleName string) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(ruleName)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective recognizes "# liveaudit:ignore" comments. A bare
// directive suppresses every rule; a comma-separated list suppresses only
// the named ones.
func parseIgnoreDirective(line string) (ignoreRule, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "#") {
		return ignoreRule{}, false
	}

	s = strings.TrimSpace(strings.TrimLeft(s, "#"))

	if !strings.HasPrefix(s, "liveaudit:ignore") {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, "liveaudit:ignore"))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// fileIgnoreRule merges every liveaudit:ignore directive found in the file
// into a single file-level suppression rule.
func fileIgnoreRule(src m.SourceText) ignoreRule {
	var rule ignoreRule

	for i := 0; i < src.Len(); i++ {
		if r, ok := parseIgnoreDirective(src.Line(i)); ok {
			mergeIgnoreRule(&rule, r)
		}
	}

	return rule
}
