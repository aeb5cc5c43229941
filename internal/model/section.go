package model

// SectionOccurrence records a comment line that already carries a section
// label. LineIndex is 0-based.
type SectionOccurrence struct {
	LineIndex int
	RawLabel  string
	Name      SectionName
}

// InsertionPlan describes a single label to be added. LineIndex is the
// 0-based index of the first declaration line of the target category; the
// rendered label is spliced in immediately before that line. Indentation is
// the literal leading-whitespace run of the declaration so the label aligns
// with the code it precedes.
type InsertionPlan struct {
	LineIndex   int
	Name        SectionName
	Indentation string
	LabelLine   string
}
