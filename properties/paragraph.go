package properties

// Spacing holds vertical spacing around and within a paragraph.
// All values are points.
type Spacing struct {
	Before   *float64
	After    *float64
	Line     *float64
	LineRule *string // auto, exact, atLeast
}

// Indentation holds the horizontal indentation of a paragraph, in points.
// FirstLine and Hanging are mutually exclusive in practice; a hanging
// indent is the negative counterpart of a first-line indent.
type Indentation struct {
	Left      *float64
	Right     *float64
	FirstLine *float64
	Hanging   *float64
}

// Border describes a single border edge.
type Border struct {
	Style *string  // single, double, dashed, ...
	Width *float64 // points
	Space *float64 // gap between border and content, points
	Color *string  // hex color or "auto"
}

// ParagraphBorders holds the border edges of a paragraph. Between is the
// border drawn between consecutive paragraphs sharing the same setting.
type ParagraphBorders struct {
	Top     *Border
	Bottom  *Border
	Left    *Border
	Right   *Border
	Between *Border
}

// TabStop describes a single custom tab stop.
type TabStop struct {
	Position  float64 // points from the left margin
	Alignment string  // left, center, right, decimal, bar
	Leader    string  // none, dot, hyphen, underscore
}

// ParagraphProperties holds the block-level formatting of a paragraph.
// Mark carries the run formatting of the paragraph mark itself (rPr
// nested inside pPr); the style resolver also folds the inheritance
// chain's run formatting into it so callers get paragraph-mark character
// formatting without a second chain traversal.
type ParagraphProperties struct {
	Alignment         *string // left, center, right, both
	Spacing           *Spacing
	Indentation       *Indentation
	OutlineLevel      *int // 0-8
	KeepNext          *bool
	KeepLines         *bool
	PageBreakBefore   *bool
	ContextualSpacing *bool
	Borders           *ParagraphBorders
	Shading           *Shading
	Tabs              []TabStop
	Mark              *RunProperties
}

// MergeParagraph combines two paragraph property sets, with override
// winning field by field. Nested aggregates merge recursively; the tab
// stop list is replaced wholesale. Either argument may be nil. The result
// is always non-nil and shares no pointers with the inputs.
func MergeParagraph(base, override *ParagraphProperties) *ParagraphProperties {
	if base == nil {
		base = &ParagraphProperties{}
	}
	if override == nil {
		override = &ParagraphProperties{}
	}
	out := &ParagraphProperties{
		Alignment:         mergeScalar(base.Alignment, override.Alignment),
		Spacing:           mergeSpacing(base.Spacing, override.Spacing),
		Indentation:       mergeIndentation(base.Indentation, override.Indentation),
		OutlineLevel:      mergeScalar(base.OutlineLevel, override.OutlineLevel),
		KeepNext:          mergeScalar(base.KeepNext, override.KeepNext),
		KeepLines:         mergeScalar(base.KeepLines, override.KeepLines),
		PageBreakBefore:   mergeScalar(base.PageBreakBefore, override.PageBreakBefore),
		ContextualSpacing: mergeScalar(base.ContextualSpacing, override.ContextualSpacing),
		Borders:           mergeParagraphBorders(base.Borders, override.Borders),
		Shading:           mergeShading(base.Shading, override.Shading),
		Tabs:              mergeSlice(base.Tabs, override.Tabs),
	}
	if base.Mark != nil || override.Mark != nil {
		out.Mark = MergeRun(base.Mark, override.Mark)
	}
	return out
}

// MergeParagraphChain folds MergeParagraph over a cascade ordered lowest
// to highest priority. Nil entries are skipped.
func MergeParagraphChain(chain ...*ParagraphProperties) *ParagraphProperties {
	out := &ParagraphProperties{}
	for _, pp := range chain {
		if pp == nil {
			continue
		}
		out = MergeParagraph(out, pp)
	}
	return out
}

// CloneParagraph returns a deep copy of pp. A nil input yields an empty set.
func CloneParagraph(pp *ParagraphProperties) *ParagraphProperties {
	return MergeParagraph(nil, pp)
}

func mergeSpacing(base, override *Spacing) *Spacing {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &Spacing{}
	}
	if override == nil {
		override = &Spacing{}
	}
	return &Spacing{
		Before:   mergeScalar(base.Before, override.Before),
		After:    mergeScalar(base.After, override.After),
		Line:     mergeScalar(base.Line, override.Line),
		LineRule: mergeScalar(base.LineRule, override.LineRule),
	}
}

func mergeIndentation(base, override *Indentation) *Indentation {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &Indentation{}
	}
	if override == nil {
		override = &Indentation{}
	}
	return &Indentation{
		Left:      mergeScalar(base.Left, override.Left),
		Right:     mergeScalar(base.Right, override.Right),
		FirstLine: mergeScalar(base.FirstLine, override.FirstLine),
		Hanging:   mergeScalar(base.Hanging, override.Hanging),
	}
}

func mergeBorder(base, override *Border) *Border {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &Border{}
	}
	if override == nil {
		override = &Border{}
	}
	return &Border{
		Style: mergeScalar(base.Style, override.Style),
		Width: mergeScalar(base.Width, override.Width),
		Space: mergeScalar(base.Space, override.Space),
		Color: mergeScalar(base.Color, override.Color),
	}
}

func mergeParagraphBorders(base, override *ParagraphBorders) *ParagraphBorders {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &ParagraphBorders{}
	}
	if override == nil {
		override = &ParagraphBorders{}
	}
	return &ParagraphBorders{
		Top:     mergeBorder(base.Top, override.Top),
		Bottom:  mergeBorder(base.Bottom, override.Bottom),
		Left:    mergeBorder(base.Left, override.Left),
		Right:   mergeBorder(base.Right, override.Right),
		Between: mergeBorder(base.Between, override.Between),
	}
}
