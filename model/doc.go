// Package model provides the flat intermediate representation for
// converted word-processing documents.
//
// This package defines the user-facing data structures produced by a
// conversion: a linear sequence of styled blocks, ready for an HTML or
// plain-text renderer to walk without any further property resolution.
//
// # Document Structure
//
// The [Document] type holds the block sequence:
//
//	doc := model.NewDocument()
//	doc.AddBlock(paragraph)
//
// All blocks implement the [Block] interface. The concrete types are:
//
//   - [Paragraph] - a styled paragraph with its runs, optional list
//     marker, and heading level
//   - [Table] - rows and cells of nested paragraphs
//
// Every block carries fully resolved properties: document defaults,
// style inheritance, and direct formatting have already been merged, and
// list paragraphs carry their rendered label (e.g. "3.", "a)", "iv.").
package model
