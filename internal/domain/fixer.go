package domain

import (
	"errors"
	"fmt"

	m "liveaudit/internal/model"
)

// ErrNothingToFix signals that every required, applicable section is already
// present. It is a recoverable condition, distinct from I/O or computational
// failure.
var ErrNothingToFix = errors.New("all required sections are already present")

// ErrNotCandidate signals that the content does not look like a
// lifecycle-style module.
var ErrNotCandidate = errors.New("not a lifecycle-style module")

// FixOptions tunes FixSections.
type FixOptions struct {
	// Force re-resolves the full applicable set regardless of existing
	// labels. Existing labels are left untouched and never duplicated: a
	// force run on a fully labeled file succeeds with unchanged text.
	Force bool
	// Preview renders a diff instead of producing fixed content.
	Preview bool
	// FilePath annotates preview output only.
	FilePath m.Path
	// Components treats function-component modules as candidates too.
	Components bool
	// Style overrides the label decoration; zero value means default.
	Style *LabelStyle
}

// FixOutcome is the result of a fix run: either new content (apply mode) or
// a rendered preview.
type FixOutcome struct {
	Text    m.SourceText
	Preview string
	Changed bool
}

// FixSections inserts the missing labels for the given required sections.
// Apply mode returns ErrNothingToFix when there is nothing to insert;
// preview mode returns a "no changes needed" message instead, since
// previewing a no-op is a valid request.
func FixSections(content string, required []m.SectionName, opts FixOptions) (FixOutcome, error) {
	src := m.NewSourceText(content)

	if !IsCandidate(src, opts.Components) {
		return FixOutcome{}, ErrNotCandidate
	}

	if len(required) == 0 {
		required = DefaultRequiredSections()
	}

	style := DefaultLabelStyle()
	if opts.Style != nil {
		style = *opts.Style
	}

	c := Classify(src)
	targets := ResolveSections(c, required, opts.Force)

	// Force never duplicates: drop sections that already carry a label.
	if opts.Force {
		var deduped []m.SectionName

		for _, name := range targets {
			if !c.HasSection(name) {
				deduped = append(deduped, name)
			}
		}

		targets = deduped
	}

	plans := PlanInsertions(src, targets, style)

	if len(plans) == 0 {
		if opts.Preview {
			return FixOutcome{Text: src, Preview: noChangesMessage(opts.FilePath)}, nil
		}

		if opts.Force {
			return FixOutcome{Text: src, Changed: false}, nil
		}

		return FixOutcome{}, ErrNothingToFix
	}

	if opts.Preview {
		return FixOutcome{
			Text:    src,
			Preview: RenderPreview(src, plans, opts.FilePath),
		}, nil
	}

	return FixOutcome{
		Text:    ApplyInsertionsDescending(src, plans),
		Changed: true,
	}, nil
}

func noChangesMessage(filePath m.Path) string {
	if filePath == "" {
		return "No changes needed: all required sections are present.\n"
	}

	return fmt.Sprintf("No changes needed for %s: all required sections are present.\n", filePath)
}
