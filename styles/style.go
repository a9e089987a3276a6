// Package styles resolves style inheritance for word-processing documents.
//
// A document's style sheet is a set of style definitions linked by
// basedOn pointers. Resolving a style means walking its inheritance chain
// from the root ancestor down to the style itself, layering each
// definition's properties over the previous one, with document defaults
// underneath everything. The Resolver does this once per style and caches
// the result for the lifetime of the (immutable) registry.
package styles

import (
	"github.com/tsawler/wordml/properties"
)

// StyleType identifies which kind of content a style applies to.
type StyleType string

const (
	TypeParagraph StyleType = "paragraph"
	TypeCharacter StyleType = "character"
	TypeTable     StyleType = "table"
	TypeNumbering StyleType = "numbering"
)

// Style is a single style definition from a document's style sheet,
// as produced by the XML extraction layer.
type Style struct {
	ID      string // unique within a style sheet
	Name    string // display name, e.g. "Heading 1"
	Type    StyleType
	BasedOn string // parent style ID, empty for root styles
	Link    string // linked paragraph/character counterpart, if any
	Default bool   // true for the default style of its type

	Paragraph *properties.ParagraphProperties
	Run       *properties.RunProperties
	Table     *properties.TableProperties
}

// DocumentDefaults holds the baseline formatting applied underneath every
// style chain (docDefaults in styles.xml).
type DocumentDefaults struct {
	Paragraph *properties.ParagraphProperties
	Run       *properties.RunProperties
}
