package domain

import (
	"fmt"
	"strings"

	m "liveaudit/internal/model"
)

// previewContext is the number of original lines shown before and after each
// insertion point.
const previewContext = 3

// previewPreamble heads every preview rendering.
const previewPreamble = "Planned section labels (no files were modified):"

// ApplyInsertionsDescending splices the rendered label lines into the text.
// Plans must be sorted ascending by line index; they are applied from the
// highest index to the lowest so that every not-yet-applied plan's stored
// index stays valid in the original index space. A plan index outside the
// text bounds is a logic defect and panics.
func ApplyInsertionsDescending(src m.SourceText, plans []m.InsertionPlan) m.SourceText {
	lines := src.Lines()

	for i := len(plans) - 1; i >= 0; i-- {
		plan := plans[i]

		if plan.LineIndex < 0 || plan.LineIndex >= src.Len() {
			panic(fmt.Sprintf(
				"insertion plan for %q targets line %d outside text of %d lines",
				plan.Name, plan.LineIndex, src.Len()))
		}

		lines = append(lines[:plan.LineIndex],
			append([]string{plan.LabelLine}, lines[plan.LineIndex:]...)...)
	}

	return m.FromLines(lines, src.TrailingNewline())
}

// RenderPreview renders the plan as a line-numbered, context-bounded diff
// against the original text. Context lines carry their original 1-based
// numbers; the added label carries the 1-based number it will occupy after
// all insertions are applied. Preview is a pure rendering of the same plan
// that apply mode uses, never an independent computation.
func RenderPreview(src m.SourceText, plans []m.InsertionPlan, filePath m.Path) string {
	var b strings.Builder

	b.WriteString(previewPreamble)

	if filePath != "" {
		b.WriteString(" ")
		b.WriteString(string(filePath))
	}

	b.WriteString("\n")

	for i, plan := range plans {
		b.WriteString("\n")
		fmt.Fprintf(&b, "+ %q before line %d:\n", string(plan.Name), plan.LineIndex+1)

		start := plan.LineIndex - previewContext
		if start < 0 {
			start = 0
		}

		end := plan.LineIndex + previewContext
		if end > src.Len() {
			end = src.Len()
		}

		for j := start; j < plan.LineIndex; j++ {
			fmt.Fprintf(&b, "  %4d   %s\n", j+1, src.Line(j))
		}

		// Earlier insertions shift this label down by one line each.
		fmt.Fprintf(&b, "  %4d + %s\n", plan.LineIndex+i+1, plan.LabelLine)

		for j := plan.LineIndex; j < end; j++ {
			fmt.Fprintf(&b, "  %4d   %s\n", j+1, src.Line(j))
		}
	}

	return b.String()
}
