// Package model defines the data structures shared by the audit pipeline.
package model

import "strings"

// Path represents a file system path.
type Path string

// SourceText is an immutable, line-indexed view of a source file. Lines are
// 0-indexed internally; every user-facing line number is 1-based. Transforms
// never mutate a SourceText in place, they return a new value.
type SourceText struct {
	lines           []string
	trailingNewline bool
}

// NewSourceText splits raw file content into lines. A trailing newline is
// remembered so Render can reproduce the original byte-for-byte.
func NewSourceText(content string) SourceText {
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		content = strings.TrimSuffix(content, "\n")
	}

	return SourceText{
		lines:           strings.Split(content, "\n"),
		trailingNewline: trailing,
	}
}

// FromLines builds a SourceText from an already-split line sequence.
// The slice is not copied; callers hand over ownership.
func FromLines(lines []string, trailingNewline bool) SourceText {
	return SourceText{lines: lines, trailingNewline: trailingNewline}
}

// Len returns the number of lines.
func (s SourceText) Len() int {
	return len(s.lines)
}

// Line returns the line at the given 0-based index.
func (s SourceText) Line(i int) string {
	return s.lines[i]
}

// Lines returns a copy of the line sequence.
func (s SourceText) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)

	return out
}

// TrailingNewline reports whether the original content ended with a newline.
func (s SourceText) TrailingNewline() bool {
	return s.trailingNewline
}

// Render joins the lines back into file content.
func (s SourceText) Render() string {
	out := strings.Join(s.lines, "\n")
	if s.trailingNewline {
		out += "\n"
	}

	return out
}
