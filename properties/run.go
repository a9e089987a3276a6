package properties

// Fonts holds the per-script font assignments for a run.
// Word assigns fonts separately for ASCII, high-ANSI, complex-script,
// and East Asian character ranges.
type Fonts struct {
	ASCII    *string
	HAnsi    *string
	CS       *string
	EastAsia *string
}

// Shading represents a background shading pattern (character, paragraph,
// or table cell).
type Shading struct {
	Pattern *string // pattern name, e.g. "clear", "solid", "pct25"
	Color   *string // pattern color, hex like "FF0000" or "auto"
	Fill    *string // background fill color
}

// RunProperties holds the character-level formatting of a text run.
// A nil field is unset; an explicit false/zero value overrides inherited
// formatting (e.g. Bold pointing at false turns bold off).
type RunProperties struct {
	Fonts     *Fonts
	Size      *float64 // font size in points
	Bold      *bool
	Italic    *bool
	Underline *string // single, double, dotted, none, ...
	Strike    *bool
	SmallCaps *bool
	AllCaps   *bool
	VertAlign *string  // superscript, subscript, baseline
	Spacing   *float64 // character spacing in points (can be negative)
	Color     *string  // hex color like "FF0000", or "auto"
	Highlight *string  // highlight color name like "yellow"
	Shading   *Shading
}

// IsZero reports whether no field of the run properties is set.
func (rp *RunProperties) IsZero() bool {
	if rp == nil {
		return true
	}
	return rp.Fonts == nil && rp.Size == nil && rp.Bold == nil &&
		rp.Italic == nil && rp.Underline == nil && rp.Strike == nil &&
		rp.SmallCaps == nil && rp.AllCaps == nil && rp.VertAlign == nil &&
		rp.Spacing == nil && rp.Color == nil && rp.Highlight == nil &&
		rp.Shading == nil
}

// MergeRun combines two run property sets, with override winning field
// by field. Either argument may be nil. The result is always non-nil and
// shares no pointers with the inputs.
func MergeRun(base, override *RunProperties) *RunProperties {
	if base == nil {
		base = &RunProperties{}
	}
	if override == nil {
		override = &RunProperties{}
	}
	return &RunProperties{
		Fonts:     mergeFonts(base.Fonts, override.Fonts),
		Size:      mergeScalar(base.Size, override.Size),
		Bold:      mergeScalar(base.Bold, override.Bold),
		Italic:    mergeScalar(base.Italic, override.Italic),
		Underline: mergeScalar(base.Underline, override.Underline),
		Strike:    mergeScalar(base.Strike, override.Strike),
		SmallCaps: mergeScalar(base.SmallCaps, override.SmallCaps),
		AllCaps:   mergeScalar(base.AllCaps, override.AllCaps),
		VertAlign: mergeScalar(base.VertAlign, override.VertAlign),
		Spacing:   mergeScalar(base.Spacing, override.Spacing),
		Color:     mergeScalar(base.Color, override.Color),
		Highlight: mergeScalar(base.Highlight, override.Highlight),
		Shading:   mergeShading(base.Shading, override.Shading),
	}
}

// MergeRunChain folds MergeRun over a cascade ordered lowest to highest
// priority. Nil entries are skipped.
func MergeRunChain(chain ...*RunProperties) *RunProperties {
	out := &RunProperties{}
	for _, rp := range chain {
		if rp == nil {
			continue
		}
		out = MergeRun(out, rp)
	}
	return out
}

// CloneRun returns a deep copy of rp. A nil input yields an empty set.
func CloneRun(rp *RunProperties) *RunProperties {
	return MergeRun(nil, rp)
}

func mergeFonts(base, override *Fonts) *Fonts {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &Fonts{}
	}
	if override == nil {
		override = &Fonts{}
	}
	return &Fonts{
		ASCII:    mergeScalar(base.ASCII, override.ASCII),
		HAnsi:    mergeScalar(base.HAnsi, override.HAnsi),
		CS:       mergeScalar(base.CS, override.CS),
		EastAsia: mergeScalar(base.EastAsia, override.EastAsia),
	}
}

func mergeShading(base, override *Shading) *Shading {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &Shading{}
	}
	if override == nil {
		override = &Shading{}
	}
	return &Shading{
		Pattern: mergeScalar(base.Pattern, override.Pattern),
		Color:   mergeScalar(base.Color, override.Color),
		Fill:    mergeScalar(base.Fill, override.Fill),
	}
}
