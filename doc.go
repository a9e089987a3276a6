// Package wordml converts parsed Office Open XML word-processing content
// into a flat, styled paragraph/run/table model.
//
// The package is an in-process library: an external extraction layer
// parses the document archive and hands over style and numbering
// definitions plus paragraph/table sources; an external renderer turns
// the resulting model into HTML or plain text. What this package owns is
// everything in between - cascading style resolution (document defaults,
// basedOn inheritance chains, direct formatting) and stateful multi-level
// list numbering.
//
// Basic usage:
//
//	conv := wordml.NewConversion(styleList, defaults, abstracts, instances)
//	doc := conv.BuildDocument(blocks)
//	if warnings := conv.Warnings(); len(warnings) > 0 {
//	    log.Println(wordml.FormatWarnings(warnings))
//	}
//
// Lower-level access is available for renderers that drive their own
// document pass:
//
//	props := conv.ParagraphProperties("Heading1")
//	label := conv.NextListLabel("5", 0)
//
// A Conversion is scoped to one document: the style and numbering
// registries are built once and are read-only afterward, while list
// numbering state advances with each NextListLabel call and is reset by
// ResetNumbering. Property resolution is safe for concurrent readers;
// numbering is strictly sequential.
package wordml
