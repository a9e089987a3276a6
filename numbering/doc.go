// Package numbering implements the multi-level list numbering engine for
// word-processing documents.
//
// OOXML splits list numbering in two: abstract numbering definitions
// (reusable level-set templates keyed by abstractNumId) and numbering
// instances (numId) that bind a template to actual paragraphs, optionally
// overriding per-level start values. The Definitions index is built once
// per document from both and is read-only afterward.
//
// Label generation is inherently stateful and order-dependent: each list
// keeps one counter per level, moving back to an outer level resets the
// deeper counters, and lvlRestart can restart a level explicitly. The
// Tracker owns that state for exactly one sequential pass over a
// document's paragraphs:
//
//	tracker := numbering.NewTracker(defs)
//	for each numbered paragraph, in document order:
//	    label := tracker.Next(numID, ilvl)
//
// Tracker is not safe for concurrent use, and Next must be called exactly
// once per numbered paragraph in document order; reordering calls
// corrupts counter and restart state. Call Reset before reusing a
// Tracker for another document.
package numbering
