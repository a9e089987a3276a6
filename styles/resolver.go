package styles

import (
	"log/slog"
	"sync"

	"github.com/tsawler/wordml/properties"
)

// defaultMaxDepth bounds the length of an inheritance chain. Word's own
// numbering of heading levels stops at nine, and real style sheets never
// nest deeper; anything beyond this is malformed input.
const defaultMaxDepth = 9

// Resolver resolves style inheritance chains into final property sets.
//
// A Resolver is built once per document from the parsed style sheet and
// is read-only afterward. Each resolve operation is memoized per style
// ID, so repeated lookups during a conversion pass are cheap. The cache
// is guarded by a mutex, making concurrent reads safe; results must be
// treated as read-only by callers.
//
// No resolve operation ever fails: unknown style IDs, dangling basedOn
// references, and inheritance cycles degrade to the nearest available
// default and are recorded as warnings.
type Resolver struct {
	styles   map[string]*Style
	defaults DocumentDefaults
	maxDepth int
	logger   *slog.Logger

	mu             sync.Mutex
	paragraphCache map[string]*properties.ParagraphProperties
	runCache       map[string]*properties.RunProperties
	runChainCache  map[string]*properties.RunProperties
	tableCache     map[string]*properties.TableProperties
	warnings       []Warning
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth bounds the inheritance chain length (default: 9).
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithLogger sets a logger that receives every recorded warning at Warn
// level. By default warnings are only accumulated.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver builds a resolver from a parsed style sheet. Styles are
// indexed by ID; a duplicate ID is recorded as a warning and the last
// definition wins. A nil defaults is treated as empty defaults.
func NewResolver(list []Style, defaults *DocumentDefaults, opts ...Option) *Resolver {
	r := &Resolver{
		styles:         make(map[string]*Style, len(list)),
		maxDepth:       defaultMaxDepth,
		paragraphCache: make(map[string]*properties.ParagraphProperties),
		runCache:       make(map[string]*properties.RunProperties),
		runChainCache:  make(map[string]*properties.RunProperties),
		tableCache:     make(map[string]*properties.TableProperties),
	}
	if defaults != nil {
		r.defaults = *defaults
	}
	for _, opt := range opts {
		opt(r)
	}
	for i := range list {
		s := &list[i]
		if _, exists := r.styles[s.ID]; exists {
			r.warn(Warning{Kind: WarnDuplicateID, StyleID: s.ID})
		}
		r.styles[s.ID] = s
	}
	return r
}

// Style returns the raw definition for an ID, or nil if unknown. The
// returned definition must be treated as read-only.
func (r *Resolver) Style(styleID string) *Style {
	return r.styles[styleID]
}

// ResolveParagraph resolves the final paragraph properties for a style:
// document defaults first, then each style in the basedOn chain from root
// ancestor to the requested style, so the style's own properties win.
// The chain's run formatting is merged in the same order and exposed on
// the result's Mark field.
//
// An unknown style ID resolves to document defaults alone and is
// recorded as a warning; ResolveParagraph never fails.
func (r *Resolver) ResolveParagraph(styleID string) *properties.ParagraphProperties {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.paragraphCache[styleID]; ok {
		return cached
	}
	chain := r.lookupChain(styleID, TypeParagraph)
	bags := make([]*properties.ParagraphProperties, 0, len(chain)+1)
	bags = append(bags, r.defaults.Paragraph)
	runs := make([]*properties.RunProperties, 0, len(chain))
	for _, s := range chain {
		bags = append(bags, s.Paragraph)
		runs = append(runs, s.Run)
	}
	out := properties.MergeParagraphChain(bags...)
	if mark := properties.MergeRunChain(runs...); !mark.IsZero() {
		// Explicit paragraph-mark formatting (rPr inside pPr) stays on
		// top of the chain's style-level run formatting.
		out.Mark = properties.MergeRun(mark, out.Mark)
	}
	r.paragraphCache[styleID] = out
	return out
}

// ResolveRun resolves the final run properties for a style, seeded with
// the document default run properties. A character style contributes its
// own basedOn chain; any other style type contributes the run formatting
// of its paragraph-style chain.
func (r *Resolver) ResolveRun(styleID string) *properties.RunProperties {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.runCache[styleID]; ok {
		return cached
	}
	var chain []*Style
	if styleID != "" {
		if def, ok := r.styles[styleID]; !ok {
			r.warn(Warning{Kind: WarnUnknownStyle, StyleID: styleID})
		} else {
			chain = r.walkChain(styleID, def.Type)
		}
	}
	bags := make([]*properties.RunProperties, 0, len(chain)+1)
	bags = append(bags, r.defaults.Run)
	for _, s := range chain {
		bags = append(bags, s.Run)
	}
	out := properties.MergeRunChain(bags...)
	r.runCache[styleID] = out
	return out
}

// ResolveRunChain resolves only the run formatting a style's own basedOn
// chain contributes, without the document default run properties.
// Layering a character style over an already resolved paragraph style
// uses this form; seeding it with defaults would let default values
// re-enter above the paragraph style's formatting.
func (r *Resolver) ResolveRunChain(styleID string) *properties.RunProperties {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.runChainCache[styleID]; ok {
		return cached
	}
	var chain []*Style
	if styleID != "" {
		if def, ok := r.styles[styleID]; !ok {
			r.warn(Warning{Kind: WarnUnknownStyle, StyleID: styleID})
		} else {
			chain = r.walkChain(styleID, def.Type)
		}
	}
	bags := make([]*properties.RunProperties, 0, len(chain))
	for _, s := range chain {
		bags = append(bags, s.Run)
	}
	out := properties.MergeRunChain(bags...)
	r.runChainCache[styleID] = out
	return out
}

// ResolveTable resolves the final table properties for a table style.
// Document defaults do not participate in table resolution.
func (r *Resolver) ResolveTable(styleID string) *properties.TableProperties {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.tableCache[styleID]; ok {
		return cached
	}
	chain := r.lookupChain(styleID, TypeTable)
	bags := make([]*properties.TableProperties, 0, len(chain))
	for _, s := range chain {
		bags = append(bags, s.Table)
	}
	out := properties.MergeTableChain(bags...)
	r.tableCache[styleID] = out
	return out
}

// ResolveWithDirect layers direct (in-place) paragraph formatting over the
// resolved style properties. Direct formatting always wins.
func (r *Resolver) ResolveWithDirect(styleID string, direct *properties.ParagraphProperties) *properties.ParagraphProperties {
	return properties.MergeParagraph(r.ResolveParagraph(styleID), direct)
}

// ClearCache drops all memoized resolution results. It exists for callers
// that hold a Resolver across unusual registry lifetimes; normal use
// never needs it.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paragraphCache = make(map[string]*properties.ParagraphProperties)
	r.runCache = make(map[string]*properties.RunProperties)
	r.runChainCache = make(map[string]*properties.RunProperties)
	r.tableCache = make(map[string]*properties.TableProperties)
}

// Warnings returns a copy of all warnings recorded so far.
func (r *Resolver) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Warning(nil), r.warnings...)
}

// lookupChain resolves the inheritance chain for a style expected to be
// of the given type. The head style's absence is reported as an unknown
// style; walkChain reports everything else.
func (r *Resolver) lookupChain(styleID string, typ StyleType) []*Style {
	if styleID == "" {
		return nil
	}
	if _, ok := r.styles[styleID]; !ok {
		r.warn(Warning{Kind: WarnUnknownStyle, StyleID: styleID})
		return nil
	}
	return r.walkChain(styleID, typ)
}

// walkChain follows basedOn pointers and returns the chain ordered root
// ancestor first, requested style last. The walk is iterative with an
// explicit visited set: a revisited ID truncates the chain (cycle), a
// missing ancestor truncates it (dangling reference), a type change
// truncates it (cross-type basedOn), and the chain length is bounded by
// maxDepth. Every truncation is recorded as a warning.
func (r *Resolver) walkChain(styleID string, typ StyleType) []*Style {
	var chain []*Style
	visited := make(map[string]bool, r.maxDepth)
	current := styleID
	for current != "" {
		if visited[current] {
			r.warn(Warning{Kind: WarnCycle, StyleID: styleID, Ref: current})
			break
		}
		if len(chain) >= r.maxDepth {
			r.warn(Warning{Kind: WarnChainTooDeep, StyleID: styleID, Ref: current})
			break
		}
		def, ok := r.styles[current]
		if !ok {
			r.warn(Warning{Kind: WarnDanglingBasedOn, StyleID: styleID, Ref: current})
			break
		}
		if def.Type != typ {
			r.warn(Warning{Kind: WarnTypeMismatch, StyleID: styleID, Ref: current})
			break
		}
		visited[current] = true
		chain = append([]*Style{def}, chain...) // prepend: root first
		current = def.BasedOn
	}
	return chain
}

// warn records a warning, assuming the caller holds no expectation about
// locking: it is called both during construction (single-threaded) and
// under mu from resolve operations.
func (r *Resolver) warn(w Warning) {
	r.warnings = append(r.warnings, w)
	if r.logger != nil {
		r.logger.Warn("style resolution",
			slog.String("kind", string(w.Kind)),
			slog.String("style", w.StyleID),
			slog.String("ref", w.Ref))
	}
}
