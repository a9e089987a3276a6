package numbering

import "log/slog"

// FallbackGlyph is the bullet returned when a label is requested for a
// numId or level with no usable definition.
const FallbackGlyph = "•"

// counterKey identifies one counter: each list keeps an independent
// counter per level.
type counterKey struct {
	numID string
	level int
}

// Tracker generates list labels for one sequential pass over a
// document's paragraphs. It owns all per-list counter state.
//
// A Tracker is scoped to a single document conversion: construct one per
// document (or call Reset between documents) and call Next exactly once
// per numbered paragraph, strictly in document order, from a single
// goroutine. It is not safe for concurrent use.
type Tracker struct {
	defs      *Definitions
	counters  map[counterKey]int
	lastLevel map[string]int // numID -> most recent ilvl passed to Next
	fallback  string
	logger    *slog.Logger
	warned    map[counterKey]bool
	warnings  []Warning
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithFallbackGlyph replaces the bullet returned for unknown numbering
// references (default: "•").
func WithFallbackGlyph(glyph string) TrackerOption {
	return func(t *Tracker) {
		t.fallback = glyph
	}
}

// WithTrackerLogger sets a logger that receives tracking warnings at
// Warn level.
func WithTrackerLogger(logger *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker creates a tracker over an indexed set of numbering
// definitions.
func NewTracker(defs *Definitions, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		defs:     defs,
		fallback: FallbackGlyph,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.Reset()
	return t
}

// Reset clears all counters and level history. Call it before reusing a
// Tracker for another document.
func (t *Tracker) Reset() {
	t.counters = make(map[counterKey]int)
	t.lastLevel = make(map[string]int)
	t.warned = make(map[counterKey]bool)
}

// Next advances the counter for (numID, ilvl) and returns the formatted
// label for the current list item. It must be called exactly once per
// numbered paragraph, in document order.
//
// An unknown numId or absent level yields the fallback bullet glyph; Next
// never fails.
func (t *Tracker) Next(numID string, ilvl int) string {
	lvl := t.defs.Level(numID, ilvl)
	if lvl == nil {
		t.warnUnknown(numID, ilvl)
		return t.fallback
	}

	// Restart resolution happens before this level's counter is touched.
	last, seen := t.lastLevel[numID]
	if seen {
		if lvl.Restart != nil && last <= *lvl.Restart && last < ilvl {
			// Explicit lvlRestart: re-entering this level from a
			// qualifying shallower level restarts it.
			delete(t.counters, counterKey{numID, ilvl})
		}
		if ilvl < last {
			// Moving out to a shallower level resets every deeper
			// counter; staying or going deeper resets nothing.
			for deep := ilvl + 1; deep <= MaxLevel; deep++ {
				delete(t.counters, counterKey{numID, deep})
			}
		}
	}

	key := counterKey{numID, ilvl}
	if current, ok := t.counters[key]; ok {
		// Bullet levels keep their counter frozen so placeholder
		// substitution in deeper levels stays consistent.
		if lvl.Format != FormatBullet {
			t.counters[key] = current + 1
		}
	} else {
		t.counters[key] = t.startValue(numID, lvl)
	}
	t.lastLevel[numID] = ilvl

	if lvl.Format == FormatBullet {
		return lvl.Text
	}
	return t.expand(numID, lvl.Text)
}

// Warnings returns a copy of the warnings recorded while tracking.
func (t *Tracker) Warnings() []Warning {
	return append([]Warning(nil), t.warnings...)
}

// startValue returns the initial counter value for a level: the
// instance's start override when present, otherwise the level's own start
// value, otherwise 1. Start values below 1 are treated as absent in both
// positions, so an override cannot smuggle in a value the level form
// would reject.
func (t *Tracker) startValue(numID string, lvl *Level) int {
	if start, ok := t.defs.StartOverride(numID, lvl.Index); ok && start >= 1 {
		return start
	}
	if lvl.Start >= 1 {
		return lvl.Start
	}
	return 1
}

// expand substitutes %1..%9 placeholders in a level text template.
// Placeholder %k renders the current counter of level k-1 using that
// level's own number format, so mixed-format templates like "A.1.i" work.
// A referenced level that has not been visited yet contributes its start
// value without its counter being created.
func (t *Tracker) expand(numID string, text string) string {
	var out []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '%' && i+1 < len(text) && text[i+1] >= '1' && text[i+1] <= '9' {
			ref := int(text[i+1] - '1')
			out = append(out, t.levelValue(numID, ref)...)
			i++
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// levelValue renders the current counter value for one level. Missing
// referenced levels render as decimal from their start value.
func (t *Tracker) levelValue(numID string, ilvl int) string {
	lvl := t.defs.Level(numID, ilvl)
	value, ok := t.counters[counterKey{numID, ilvl}]
	if !ok {
		if lvl != nil {
			value = t.startValue(numID, lvl)
		} else {
			value = 1
		}
	}
	format := FormatDecimal
	if lvl != nil {
		format = lvl.Format
	}
	return FormatValue(value, format)
}

// warnUnknown records at most one warning per (numID, ilvl) pair, so a
// long list with a broken definition does not flood the warning list.
func (t *Tracker) warnUnknown(numID string, ilvl int) {
	key := counterKey{numID, ilvl}
	if t.warned[key] {
		return
	}
	t.warned[key] = true
	w := Warning{Kind: WarnUnknownNum, NumID: numID, Level: ilvl}
	t.warnings = append(t.warnings, w)
	if t.logger != nil {
		t.logger.Warn("numbering fallback",
			slog.String("kind", string(w.Kind)),
			slog.String("num", numID),
			slog.Int("level", ilvl))
	}
}
