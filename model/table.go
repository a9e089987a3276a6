package model

import (
	"strings"

	"github.com/tsawler/wordml/properties"
)

// Table is a styled table block.
type Table struct {
	StyleID    string
	Properties *properties.TableProperties
	Rows       []TableRow
}

// TableRow is a single table row.
type TableRow struct {
	Header bool
	Cells  []TableCell
}

// TableCell is a single table cell. Cells contain paragraphs, so nested
// formatting and lists inside cells survive conversion.
type TableCell struct {
	ColSpan    int // 1 for normal cells
	Paragraphs []*Paragraph
}

func (t *Table) Type() BlockType { return BlockTypeTable }

// Text returns a plain-text rendering of a cell: its paragraphs joined
// by newlines.
func (c *TableCell) Text() string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, p.LabeledText())
	}
	return strings.Join(parts, "\n")
}

// ToText returns a plain-text rendering of the table: cells joined by
// tabs, rows by newlines.
func (t *Table) ToText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(cell.Text())
		}
	}
	return sb.String()
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the widest row's cell count, counting spans.
func (t *Table) ColumnCount() int {
	max := 0
	for _, row := range t.Rows {
		cols := 0
		for _, cell := range row.Cells {
			span := cell.ColSpan
			if span < 1 {
				span = 1
			}
			cols += span
		}
		if cols > max {
			max = cols
		}
	}
	return max
}
