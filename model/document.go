package model

import "strings"

// Document represents a converted document as a flat sequence of styled
// blocks.
type Document struct {
	Blocks []Block
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the document.
func (d *Document) AddBlock(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// Paragraphs returns all top-level paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, b := range d.Blocks {
		if p, ok := b.(*Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Tables returns all top-level tables in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Headings returns all paragraphs with a heading level, in document
// order.
func (d *Document) Headings() []*Paragraph {
	var headings []*Paragraph
	for _, p := range d.Paragraphs() {
		if p.HeadingLevel > 0 {
			headings = append(headings, p)
		}
	}
	return headings
}

// Text returns a plain-text rendering of the whole document: paragraphs
// with their list labels, tables as tab-separated rows, blocks separated
// by newlines.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		switch v := b.(type) {
		case *Paragraph:
			parts = append(parts, v.LabeledText())
		case *Table:
			parts = append(parts, v.ToText())
		}
	}
	return strings.Join(parts, "\n")
}
