package styles

import "fmt"

// WarningKind classifies a non-fatal condition found while building or
// resolving a style registry.
type WarningKind string

const (
	// WarnUnknownStyle means a resolve call referenced a style ID that is
	// not in the registry. Resolution falls back to document defaults.
	WarnUnknownStyle WarningKind = "unknown-style"

	// WarnDanglingBasedOn means a basedOn pointer references a style that
	// does not exist. The chain stops at the current style.
	WarnDanglingBasedOn WarningKind = "dangling-based-on"

	// WarnCycle means a basedOn chain revisited a style. The chain is
	// truncated at the repeated style and the partial chain is used.
	WarnCycle WarningKind = "based-on-cycle"

	// WarnTypeMismatch means a basedOn pointer crossed style types
	// (e.g. a paragraph style based on a table style). The chain stops.
	WarnTypeMismatch WarningKind = "type-mismatch"

	// WarnDuplicateID means two style definitions shared an ID. The last
	// definition wins.
	WarnDuplicateID WarningKind = "duplicate-style-id"

	// WarnChainTooDeep means an inheritance chain exceeded the configured
	// depth bound and was truncated.
	WarnChainTooDeep WarningKind = "chain-too-deep"
)

// Warning records a non-fatal condition. Nothing in this package returns
// an error or panics on malformed input; warnings are the only signal.
type Warning struct {
	Kind    WarningKind
	StyleID string // the style being resolved or defined
	Ref     string // the offending reference, if any
}

func (w Warning) String() string {
	if w.Ref != "" {
		return fmt.Sprintf("%s: style %q (ref %q)", w.Kind, w.StyleID, w.Ref)
	}
	return fmt.Sprintf("%s: style %q", w.Kind, w.StyleID)
}
