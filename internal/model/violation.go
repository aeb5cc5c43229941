package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity defines the importance of a violation.
type Severity int

const (
	// SeverityWarning marks conventions worth fixing but not build-breaking.
	SeverityWarning Severity = iota
	// SeverityError marks violations that fail the run in strict mode.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}

	return "unknown"
}

// MarshalJSON renders the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// UnmarshalJSON accepts the lowercase name form written by MarshalJSON.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = ParseSeverity(raw)

	return nil
}

// ParseSeverity maps a configuration string to a Severity. Unrecognized
// values fall back to SeverityWarning.
func ParseSeverity(raw string) Severity {
	if strings.EqualFold(strings.TrimSpace(raw), "error") {
		return SeverityError
	}

	return SeverityWarning
}

// Violation is the uniform record produced by every audit rule and consumed
// by the reporters. It is immutable once created.
type Violation struct {
	Message  string   `json:"message"`
	File     Path     `json:"file"`
	Line     int      `json:"line,omitempty"` // 1-based, 0 when not tied to a line
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
}
