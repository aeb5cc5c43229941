package model

// FunctionCategory is the functional role of a declaration inside a
// lifecycle-style module. Categories decide where a section label belongs and
// whether it is required at all.
type FunctionCategory int

// Available FunctionCategory values, in classification priority order.
const (
	CategoryOther FunctionCategory = iota
	CategoryLifecycle
	CategoryEventHandler
	CategoryInfoHandler
	CategoryRendering
)

func (c FunctionCategory) String() string {
	switch c {
	case CategoryLifecycle:
		return "lifecycle"
	case CategoryEventHandler:
		return "event_handler"
	case CategoryInfoHandler:
		return "info_handler"
	case CategoryRendering:
		return "rendering"
	case CategoryOther:
		return "other"
	}

	return "unknown"
}

// SectionName is the canonical label text of a section, e.g.
// "LIFECYCLE CALLBACKS". Matching is case-sensitive on the phrase itself.
type SectionName string

// Canonical section names. Unknown or custom names map to CategoryOther and
// are never auto-required.
const (
	SectionLifecycle     SectionName = "LIFECYCLE CALLBACKS"
	SectionEventHandlers SectionName = "EVENT HANDLERS"
	SectionInfoHandlers  SectionName = "INFO HANDLERS"
	SectionRendering     SectionName = "RENDERING"
)
