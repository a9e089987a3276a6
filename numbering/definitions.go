package numbering

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/wordml/properties"
)

// Levels are zero-based; OOXML allows at most nine per list.
const (
	MinLevel = 0
	MaxLevel = 8
)

// Number format names as they appear in numbering definitions.
const (
	FormatDecimal     = "decimal"
	FormatLowerLetter = "lowerLetter"
	FormatUpperLetter = "upperLetter"
	FormatLowerRoman  = "lowerRoman"
	FormatUpperRoman  = "upperRoman"
	FormatBullet      = "bullet"
)

// Level is a single level definition inside an abstract numbering
// template.
type Level struct {
	Index   int    // ilvl, 0-8
	Start   int    // first counter value; values below 1 default to 1
	Format  string // one of the Format constants, or any numFmt value
	Text    string // label template with %1..%9 placeholders, or the literal glyph for bullets
	Restart *int   // lvlRestart: restart when coming from a level at or above this one

	Paragraph *properties.ParagraphProperties
	Run       *properties.RunProperties
}

// AbstractDefinition is a reusable numbering template (abstractNum).
type AbstractDefinition struct {
	ID     string
	Levels []Level
}

// LevelOverride replaces the start value of one level for a specific
// numbering instance. Like Level.Start, values below 1 are treated as
// absent.
type LevelOverride struct {
	Level int
	Start int
}

// Instance binds a numId to an abstract template, optionally overriding
// per-level start values.
type Instance struct {
	ID         string
	AbstractID string
	Overrides  []LevelOverride
}

// WarningKind classifies a non-fatal condition found while indexing or
// using numbering definitions.
type WarningKind string

const (
	// WarnMalformedLevel means a level had an out-of-range ilvl or no
	// number format; the level is treated as absent.
	WarnMalformedLevel WarningKind = "malformed-level"

	// WarnDanglingAbstract means an instance references an abstract
	// definition that does not exist.
	WarnDanglingAbstract WarningKind = "dangling-abstract-num"

	// WarnUnknownNum means a label was requested for an unknown numId or
	// an absent level; the fallback bullet glyph was returned.
	WarnUnknownNum WarningKind = "unknown-num"
)

// Warning records a non-fatal condition. Numbering never fails hard: a
// label is produced for every request.
type Warning struct {
	Kind       WarningKind
	NumID      string
	AbstractID string
	Level      int
}

func (w Warning) String() string {
	switch {
	case w.NumID != "" && w.AbstractID != "":
		return fmt.Sprintf("%s: num %q -> abstract %q", w.Kind, w.NumID, w.AbstractID)
	case w.NumID != "":
		return fmt.Sprintf("%s: num %q level %d", w.Kind, w.NumID, w.Level)
	default:
		return fmt.Sprintf("%s: abstract %q level %d", w.Kind, w.AbstractID, w.Level)
	}
}

// instanceInfo is the indexed form of an Instance.
type instanceInfo struct {
	abstractID string
	overrides  map[int]int // ilvl -> start override
}

// Definitions is the immutable index over a document's numbering
// definitions: abstract templates keyed by ID, and instances mapping
// numId to a template plus start overrides. Built once per document.
type Definitions struct {
	abstracts map[string]map[int]Level
	instances map[string]instanceInfo
	logger    *slog.Logger
	warnings  []Warning
}

// DefinitionsOption configures the Definitions index.
type DefinitionsOption func(*Definitions)

// WithLogger sets a logger that receives indexing warnings at Warn level.
func WithLogger(logger *slog.Logger) DefinitionsOption {
	return func(d *Definitions) {
		d.logger = logger
	}
}

// NewDefinitions indexes abstract numbering templates and numbering
// instances. Malformed levels (ilvl outside [0,8], empty number format)
// are skipped with a warning; instances referencing unknown templates are
// kept (lookups on them return nil) and warned about.
func NewDefinitions(abstracts []AbstractDefinition, instances []Instance, opts ...DefinitionsOption) *Definitions {
	d := &Definitions{
		abstracts: make(map[string]map[int]Level, len(abstracts)),
		instances: make(map[string]instanceInfo, len(instances)),
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, abs := range abstracts {
		levels := make(map[int]Level, len(abs.Levels))
		for _, lvl := range abs.Levels {
			if lvl.Index < MinLevel || lvl.Index > MaxLevel || lvl.Format == "" {
				d.warn(Warning{Kind: WarnMalformedLevel, AbstractID: abs.ID, Level: lvl.Index})
				continue
			}
			levels[lvl.Index] = lvl
		}
		d.abstracts[abs.ID] = levels
	}

	for _, inst := range instances {
		if _, ok := d.abstracts[inst.AbstractID]; !ok {
			d.warn(Warning{Kind: WarnDanglingAbstract, NumID: inst.ID, AbstractID: inst.AbstractID})
		}
		info := instanceInfo{abstractID: inst.AbstractID}
		if len(inst.Overrides) > 0 {
			info.overrides = make(map[int]int, len(inst.Overrides))
			for _, ov := range inst.Overrides {
				if ov.Level < MinLevel || ov.Level > MaxLevel {
					d.warn(Warning{Kind: WarnMalformedLevel, NumID: inst.ID, Level: ov.Level})
					continue
				}
				info.overrides[ov.Level] = ov.Start
			}
		}
		d.instances[inst.ID] = info
	}

	return d
}

// Level returns the level definition for a numId and level index, or nil
// when the numId is unknown, its abstract template is unknown, or no
// level exists at that index. It never fails.
func (d *Definitions) Level(numID string, ilvl int) *Level {
	info, ok := d.instances[numID]
	if !ok {
		return nil
	}
	levels, ok := d.abstracts[info.abstractID]
	if !ok {
		return nil
	}
	lvl, ok := levels[ilvl]
	if !ok {
		return nil
	}
	return &lvl
}

// StartOverride returns the instance-level start override for a level,
// if one exists.
func (d *Definitions) StartOverride(numID string, ilvl int) (int, bool) {
	info, ok := d.instances[numID]
	if !ok || info.overrides == nil {
		return 0, false
	}
	start, ok := info.overrides[ilvl]
	return start, ok
}

// Warnings returns a copy of the warnings recorded while indexing.
func (d *Definitions) Warnings() []Warning {
	return append([]Warning(nil), d.warnings...)
}

func (d *Definitions) warn(w Warning) {
	d.warnings = append(d.warnings, w)
	if d.logger != nil {
		d.logger.Warn("numbering definitions",
			slog.String("kind", string(w.Kind)),
			slog.String("num", w.NumID),
			slog.String("abstract", w.AbstractID),
			slog.Int("level", w.Level))
	}
}
