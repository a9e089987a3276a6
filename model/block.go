package model

import (
	"strings"

	"github.com/tsawler/wordml/properties"
)

// BlockType represents the type of a document block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeParagraph
	BlockTypeTable
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeParagraph:
		return "Paragraph"
	case BlockTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Block is the interface for all document blocks.
type Block interface {
	Type() BlockType
}

// Run is a span of text with uniform, fully resolved character
// formatting.
type Run struct {
	Text       string
	Properties *properties.RunProperties
}

// ListMarker carries the list identity and rendered label of a numbered
// or bulleted paragraph.
type ListMarker struct {
	NumID   string // numbering instance the paragraph belongs to
	Level   int    // ilvl, 0-8
	Label   string // rendered label, e.g. "3.", "a)", "iv.", "•"
	Ordered bool   // false for bullet levels
}

// Paragraph is a styled paragraph. Properties are fully resolved:
// document defaults, the style inheritance chain, and direct formatting
// have already been merged.
type Paragraph struct {
	StyleID      string
	HeadingLevel int // 1-9, 0 if not a heading
	Properties   *properties.ParagraphProperties
	Runs         []Run
	Marker       *ListMarker // nil for non-list paragraphs
}

func (p *Paragraph) Type() BlockType { return BlockTypeParagraph }

// Text returns the concatenated run text of the paragraph, without the
// list label.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// LabeledText returns the paragraph text prefixed with its list label
// and level indentation, matching how a plain-text renderer would emit a
// list item. Non-list paragraphs return Text unchanged.
func (p *Paragraph) LabeledText() string {
	if p.Marker == nil {
		return p.Text()
	}
	var sb strings.Builder
	for i := 0; i < p.Marker.Level; i++ {
		sb.WriteString("  ")
	}
	if p.Marker.Label != "" {
		sb.WriteString(p.Marker.Label)
		sb.WriteString(" ")
	}
	sb.WriteString(p.Text())
	return sb.String()
}
