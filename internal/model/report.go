package model

import "time"

// FileReport holds the violations found in a single source file.
type FileReport struct {
	File       Path        `json:"file"`
	Violations []Violation `json:"violations"`
}

// AuditReport aggregates the results of one audit run.
type AuditReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Files       []FileReport `json:"files"`
	Scanned     int          `json:"scanned"`
}

// Count returns the number of violations with the given severity.
func (r AuditReport) Count(severity Severity) int {
	total := 0

	for _, file := range r.Files {
		for _, violation := range file.Violations {
			if violation.Severity == severity {
				total++
			}
		}
	}

	return total
}

// Total returns the overall number of violations.
func (r AuditReport) Total() int {
	total := 0

	for _, file := range r.Files {
		total += len(file.Violations)
	}

	return total
}
