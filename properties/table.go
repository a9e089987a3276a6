package properties

// TableWidth describes a table or indent width together with its unit.
type TableWidth struct {
	Value *float64 // points when Type is "points", 0-100 when "percent"
	Type  *string  // auto, points, percent
}

// TableBorders holds the six border edges of a table: the four outside
// edges plus the borders drawn between interior rows and columns.
type TableBorders struct {
	Top     *Border
	Bottom  *Border
	Left    *Border
	Right   *Border
	InsideH *Border
	InsideV *Border
}

// CellMargins holds the default cell padding of a table, in points.
type CellMargins struct {
	Top    *float64
	Bottom *float64
	Left   *float64
	Right  *float64
}

// TableProperties holds table-level formatting.
type TableProperties struct {
	Width       *TableWidth
	Alignment   *string  // left, center, right
	Indent      *float64 // points from the left margin
	Layout      *string  // fixed, autofit
	Borders     *TableBorders
	Shading     *Shading
	CellMargins *CellMargins
	CellSpacing *float64 // points
}

// MergeTable combines two table property sets, with override winning
// field by field. Either argument may be nil. The result is always
// non-nil and shares no pointers with the inputs.
func MergeTable(base, override *TableProperties) *TableProperties {
	if base == nil {
		base = &TableProperties{}
	}
	if override == nil {
		override = &TableProperties{}
	}
	return &TableProperties{
		Width:       mergeTableWidth(base.Width, override.Width),
		Alignment:   mergeScalar(base.Alignment, override.Alignment),
		Indent:      mergeScalar(base.Indent, override.Indent),
		Layout:      mergeScalar(base.Layout, override.Layout),
		Borders:     mergeTableBorders(base.Borders, override.Borders),
		Shading:     mergeShading(base.Shading, override.Shading),
		CellMargins: mergeCellMargins(base.CellMargins, override.CellMargins),
		CellSpacing: mergeScalar(base.CellSpacing, override.CellSpacing),
	}
}

// MergeTableChain folds MergeTable over a cascade ordered lowest to
// highest priority. Nil entries are skipped.
func MergeTableChain(chain ...*TableProperties) *TableProperties {
	out := &TableProperties{}
	for _, tp := range chain {
		if tp == nil {
			continue
		}
		out = MergeTable(out, tp)
	}
	return out
}

// CloneTable returns a deep copy of tp. A nil input yields an empty set.
func CloneTable(tp *TableProperties) *TableProperties {
	return MergeTable(nil, tp)
}

func mergeTableWidth(base, override *TableWidth) *TableWidth {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &TableWidth{}
	}
	if override == nil {
		override = &TableWidth{}
	}
	return &TableWidth{
		Value: mergeScalar(base.Value, override.Value),
		Type:  mergeScalar(base.Type, override.Type),
	}
}

func mergeTableBorders(base, override *TableBorders) *TableBorders {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &TableBorders{}
	}
	if override == nil {
		override = &TableBorders{}
	}
	return &TableBorders{
		Top:     mergeBorder(base.Top, override.Top),
		Bottom:  mergeBorder(base.Bottom, override.Bottom),
		Left:    mergeBorder(base.Left, override.Left),
		Right:   mergeBorder(base.Right, override.Right),
		InsideH: mergeBorder(base.InsideH, override.InsideH),
		InsideV: mergeBorder(base.InsideV, override.InsideV),
	}
}

func mergeCellMargins(base, override *CellMargins) *CellMargins {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &CellMargins{}
	}
	if override == nil {
		override = &CellMargins{}
	}
	return &CellMargins{
		Top:    mergeScalar(base.Top, override.Top),
		Bottom: mergeScalar(base.Bottom, override.Bottom),
		Left:   mergeScalar(base.Left, override.Left),
		Right:  mergeScalar(base.Right, override.Right),
	}
}
