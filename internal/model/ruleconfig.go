package model

// RuleConfig carries the per-rule options handed in by the configuration
// layer. Values come straight from YAML, so the accessors normalize the
// loosely typed contents.
type RuleConfig map[string]any

// StringValue returns the string option at key, or fallback.
func (c RuleConfig) StringValue(key, fallback string) string {
	if raw, ok := c[key]; ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}

	return fallback
}

// BoolValue returns the boolean option at key, or fallback.
func (c RuleConfig) BoolValue(key string, fallback bool) bool {
	if raw, ok := c[key]; ok {
		if b, ok := raw.(bool); ok {
			return b
		}
	}

	return fallback
}

// IntValue returns the integer option at key, or fallback.
func (c RuleConfig) IntValue(key string, fallback int) int {
	switch raw := c[key].(type) {
	case int:
		return raw
	case int64:
		return int(raw)
	case float64:
		return int(raw)
	default:
		return fallback
	}
}

// FloatValue returns the numeric option at key, or fallback.
func (c RuleConfig) FloatValue(key string, fallback float64) float64 {
	switch raw := c[key].(type) {
	case float64:
		return raw
	case int:
		return float64(raw)
	case int64:
		return float64(raw)
	default:
		return fallback
	}
}

// StringList accepts both []string and the []any that yaml.v3 produces.
func (c RuleConfig) StringList(key string) []string {
	switch raw := c[key].(type) {
	case []string:
		return raw
	case []any:
		out := make([]string, 0, len(raw))

		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// ViolationLevel reads the "violation_level" option, defaulting to fallback.
func (c RuleConfig) ViolationLevel(fallback Severity) Severity {
	raw := c.StringValue("violation_level", "")
	if raw == "" {
		return fallback
	}

	return ParseSeverity(raw)
}
