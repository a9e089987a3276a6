// Package properties defines the typed formatting aggregates for
// word-processing content and the merge operations that combine them.
//
// Formatting in OOXML documents cascades: document defaults, then style
// inheritance chains, then direct (in-place) formatting. Each layer only
// sets the attributes it cares about, so every field in these structs is
// optional - a nil pointer means "unset, inherit from the layer below",
// while an explicit zero value (false, 0, "") is a real setting that
// overrides whatever the layer below provided.
//
// # Merging
//
// Each property category has a merge function:
//
//	merged := properties.MergeParagraph(base, override)
//
// Merging is field-wise: a non-nil override field wins, a nil override
// field keeps the base value. Nested aggregates (spacing, indentation,
// borders) are merged recursively; slices (tab stops) are replaced
// wholesale, never merged element by element. Inputs are never mutated
// and the result shares no pointers with either input.
//
// Chain variants fold a whole cascade in one call, lowest priority first:
//
//	final := properties.MergeParagraphChain(defaults, parent, child, direct)
//
// Nil entries in a chain are skipped; an all-nil chain yields an empty
// (but non-nil) result.
package properties
