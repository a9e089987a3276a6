package wordml

import "github.com/tsawler/wordml/properties"

// The source types mirror what the XML extraction layer produces: raw
// text plus style references and direct (in-place) formatting, with
// nothing resolved yet.

// NumberingRef ties a paragraph to a numbering instance and level
// (numPr in paragraph properties).
type NumberingRef struct {
	NumID string
	Level int // ilvl, 0-8
}

// RunSource is an unresolved text run.
type RunSource struct {
	Text    string
	StyleID string // character style reference, if any
	Direct  *properties.RunProperties
}

// ParagraphSource is an unresolved paragraph.
type ParagraphSource struct {
	StyleID   string
	Direct    *properties.ParagraphProperties
	Numbering *NumberingRef
	Runs      []RunSource
}

// CellSource is an unresolved table cell.
type CellSource struct {
	ColSpan    int // 1 (or 0) for normal cells
	Paragraphs []ParagraphSource
}

// RowSource is an unresolved table row.
type RowSource struct {
	Header bool
	Cells  []CellSource
}

// TableSource is an unresolved table.
type TableSource struct {
	StyleID string
	Direct  *properties.TableProperties
	Rows    []RowSource
}

// BlockSource is one body-level block in document order: exactly one of
// Paragraph or Table is set.
type BlockSource struct {
	Paragraph *ParagraphSource
	Table     *TableSource
}
