package domain

import (
	"sort"

	m "liveaudit/internal/model"
)

// PlanInsertions builds one InsertionPlan per requested section. Each plan
// targets the first declaration line of the section's category and captures
// that line's indentation. A section whose category has zero occurrences is
// dropped silently; insertion never invents a location. Plans are returned
// sorted ascending by line index, with equal indices kept in request order.
func PlanInsertions(src m.SourceText, names []m.SectionName, style LabelStyle) []m.InsertionPlan {
	c := Classify(src)

	var plans []m.InsertionPlan

	for _, name := range names {
		category := CategoryForSection(name)
		if category == m.CategoryOther {
			continue
		}

		lineIndex, ok := c.FirstDecl[category]
		if !ok {
			continue
		}

		indentation := Indentation(src.Line(lineIndex))

		plans = append(plans, m.InsertionPlan{
			LineIndex:   lineIndex,
			Name:        name,
			Indentation: indentation,
			LabelLine:   style.Render(indentation, name),
		})
	}

	sortPlans(plans)

	return plans
}

// sortPlans orders plans ascending by line index. The sort is stable so that
// plans targeting the same line keep the order their sections were requested
// in.
func sortPlans(plans []m.InsertionPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].LineIndex < plans[j].LineIndex
	})
}
