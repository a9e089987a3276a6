package model

import (
	"testing"

	"github.com/tsawler/wordml/properties"
)

func TestParagraph_Text(t *testing.T) {
	p := &Paragraph{
		Runs: []Run{
			{Text: "Hello, "},
			{Text: "world", Properties: &properties.RunProperties{Bold: properties.Ptr(true)}},
			{Text: "!"},
		},
	}
	if got := p.Text(); got != "Hello, world!" {
		t.Errorf("Text() = %q", got)
	}
}

func TestParagraph_LabeledText(t *testing.T) {
	tests := []struct {
		name string
		p    *Paragraph
		want string
	}{
		{
			name: "plain paragraph",
			p:    &Paragraph{Runs: []Run{{Text: "Body."}}},
			want: "Body.",
		},
		{
			name: "top-level list item",
			p: &Paragraph{
				Runs:   []Run{{Text: "First"}},
				Marker: &ListMarker{NumID: "1", Level: 0, Label: "1.", Ordered: true},
			},
			want: "1. First",
		},
		{
			name: "nested bullet",
			p: &Paragraph{
				Runs:   []Run{{Text: "Deep"}},
				Marker: &ListMarker{NumID: "2", Level: 2, Label: "•"},
			},
			want: "    • Deep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.LabeledText(); got != tt.want {
				t.Errorf("LabeledText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlockType_String(t *testing.T) {
	tests := []struct {
		bt   BlockType
		want string
	}{
		{BlockTypeParagraph, "Paragraph"},
		{BlockTypeTable, "Table"},
		{BlockTypeUnknown, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.bt.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.bt, got, tt.want)
		}
	}
}

func TestDocument_Filters(t *testing.T) {
	doc := NewDocument()
	doc.AddBlock(&Paragraph{HeadingLevel: 1, Runs: []Run{{Text: "Intro"}}})
	doc.AddBlock(&Paragraph{Runs: []Run{{Text: "Body"}}})
	doc.AddBlock(&Table{Rows: []TableRow{{Cells: []TableCell{{}}}}})

	if got := len(doc.Paragraphs()); got != 2 {
		t.Errorf("len(Paragraphs()) = %d, want 2", got)
	}
	if got := len(doc.Tables()); got != 1 {
		t.Errorf("len(Tables()) = %d, want 1", got)
	}
	headings := doc.Headings()
	if len(headings) != 1 || headings[0].Text() != "Intro" {
		t.Errorf("Headings() = %v", headings)
	}
}

func TestTable_ToText(t *testing.T) {
	table := &Table{
		Rows: []TableRow{
			{
				Header: true,
				Cells: []TableCell{
					{Paragraphs: []*Paragraph{{Runs: []Run{{Text: "Name"}}}}},
					{Paragraphs: []*Paragraph{{Runs: []Run{{Text: "Qty"}}}}},
				},
			},
			{
				Cells: []TableCell{
					{Paragraphs: []*Paragraph{{Runs: []Run{{Text: "Widget"}}}}},
					{Paragraphs: []*Paragraph{{Runs: []Run{{Text: "3"}}}}},
				},
			},
		},
	}

	want := "Name\tQty\nWidget\t3"
	if got := table.ToText(); got != want {
		t.Errorf("ToText() = %q, want %q", got, want)
	}
}

func TestTable_ColumnCount(t *testing.T) {
	table := &Table{
		Rows: []TableRow{
			{Cells: []TableCell{{ColSpan: 2}, {ColSpan: 1}}},
			{Cells: []TableCell{{}, {}, {}}}, // zero spans count as 1
		},
	}
	if got := table.ColumnCount(); got != 3 {
		t.Errorf("ColumnCount() = %d, want 3", got)
	}
	if got := table.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
}

func TestDocument_Text(t *testing.T) {
	doc := NewDocument()
	doc.AddBlock(&Paragraph{Runs: []Run{{Text: "Title"}}, HeadingLevel: 1})
	doc.AddBlock(&Paragraph{
		Runs:   []Run{{Text: "item"}},
		Marker: &ListMarker{Label: "1.", Ordered: true},
	})

	want := "Title\n1. item"
	if got := doc.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
