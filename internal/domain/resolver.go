package domain

import m "liveaudit/internal/model"

// ApplicableSections filters the configured required names down to those
// whose category actually occurs in the file. A section with no matching
// functions is never demanded. Order of the required list is preserved;
// names that map to no known category are dropped.
func ApplicableSections(c Classification, required []m.SectionName) []m.SectionName {
	var applicable []m.SectionName

	for _, name := range required {
		category := CategoryForSection(name)
		if category == m.CategoryOther {
			continue
		}

		if c.HasCategory(category) {
			applicable = append(applicable, name)
		}
	}

	return applicable
}

// MissingSections subtracts the sections already present from the applicable
// set, preserving order.
func MissingSections(c Classification, applicable []m.SectionName) []m.SectionName {
	var missing []m.SectionName

	for _, name := range applicable {
		if !c.HasSection(name) {
			missing = append(missing, name)
		}
	}

	return missing
}

// ResolveSections computes the sections to insert. Under force the full
// applicable set is returned regardless of existing occurrences; otherwise
// only the missing subset. An empty result means "nothing to do", which the
// caller must keep distinct from a detected violation.
func ResolveSections(c Classification, required []m.SectionName, force bool) []m.SectionName {
	applicable := ApplicableSections(c, required)
	if force {
		return applicable
	}

	return MissingSections(c, applicable)
}
