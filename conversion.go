package wordml

import (
	"github.com/tsawler/wordml/model"
	"github.com/tsawler/wordml/numbering"
	"github.com/tsawler/wordml/properties"
	"github.com/tsawler/wordml/styles"
)

// Conversion is a single-document conversion session. It owns the
// immutable style and numbering registries, the mutable numbering
// tracker, and the accumulated warnings.
//
// Property resolution (ParagraphProperties, RunProperties,
// TableProperties) is memoized and safe for concurrent readers.
// NextListLabel and BuildDocument advance numbering state and must be
// driven sequentially, in document order, by a single goroutine.
type Conversion struct {
	styles  *styles.Resolver
	defs    *numbering.Definitions
	tracker *numbering.Tracker
}

// NewConversion builds a conversion session from the definitions the
// extraction layer produced for one document. The registries are indexed
// once here and are read-only afterward.
func NewConversion(styleList []styles.Style, defaults *styles.DocumentDefaults,
	abstracts []numbering.AbstractDefinition, instances []numbering.Instance,
	opts ...Option) *Conversion {

	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var styleOpts []styles.Option
	if options.maxDepth > 0 {
		styleOpts = append(styleOpts, styles.WithMaxDepth(options.maxDepth))
	}
	if options.logger != nil {
		styleOpts = append(styleOpts, styles.WithLogger(options.logger))
	}

	var defOpts []numbering.DefinitionsOption
	trackerOpts := []numbering.TrackerOption{
		numbering.WithFallbackGlyph(options.bulletFallback),
	}
	if options.logger != nil {
		defOpts = append(defOpts, numbering.WithLogger(options.logger))
		trackerOpts = append(trackerOpts, numbering.WithTrackerLogger(options.logger))
	}

	defs := numbering.NewDefinitions(abstracts, instances, defOpts...)
	return &Conversion{
		styles:  styles.NewResolver(styleList, defaults, styleOpts...),
		defs:    defs,
		tracker: numbering.NewTracker(defs, trackerOpts...),
	}
}

// ParagraphProperties resolves the final paragraph properties for a
// style ID. Unknown IDs resolve to document defaults.
func (c *Conversion) ParagraphProperties(styleID string) *properties.ParagraphProperties {
	return c.styles.ResolveParagraph(styleID)
}

// RunProperties resolves the final run properties for a style ID.
func (c *Conversion) RunProperties(styleID string) *properties.RunProperties {
	return c.styles.ResolveRun(styleID)
}

// TableProperties resolves the final table properties for a style ID.
func (c *Conversion) TableProperties(styleID string) *properties.TableProperties {
	return c.styles.ResolveTable(styleID)
}

// ParagraphPropertiesWithDirect layers direct paragraph formatting over
// the resolved style properties.
func (c *Conversion) ParagraphPropertiesWithDirect(styleID string, direct *properties.ParagraphProperties) *properties.ParagraphProperties {
	return c.styles.ResolveWithDirect(styleID, direct)
}

// NextListLabel advances the counter for (numID, ilvl) and returns the
// rendered list label. Calls must happen in document order, once per
// numbered paragraph.
func (c *Conversion) NextListLabel(numID string, ilvl int) string {
	return c.tracker.Next(numID, ilvl)
}

// ResetNumbering clears all list counters. BuildDocument calls it
// automatically; callers driving NextListLabel themselves call it once
// before their document pass.
func (c *Conversion) ResetNumbering() {
	c.tracker.Reset()
}

// Paragraph resolves one paragraph source into a model paragraph:
// style-resolved properties merged with direct formatting, runs resolved
// against the paragraph and character styles, and the next list label
// when the paragraph is numbered.
func (c *Conversion) Paragraph(src ParagraphSource) *model.Paragraph {
	p := &model.Paragraph{
		StyleID:      src.StyleID,
		HeadingLevel: c.styles.HeadingLevel(src.StyleID),
		Properties:   c.styles.ResolveWithDirect(src.StyleID, src.Direct),
		Runs:         make([]model.Run, 0, len(src.Runs)),
	}

	for _, rs := range src.Runs {
		rp := c.styles.ResolveRun(src.StyleID)
		if rs.StyleID != "" {
			// The character style contributes only its own chain here;
			// document defaults are already under the paragraph style.
			rp = properties.MergeRun(rp, c.styles.ResolveRunChain(rs.StyleID))
		}
		if rs.Direct != nil {
			rp = properties.MergeRun(rp, rs.Direct)
		}
		p.Runs = append(p.Runs, model.Run{Text: rs.Text, Properties: rp})
	}

	if src.Numbering != nil {
		ordered := false
		if lvl := c.defs.Level(src.Numbering.NumID, src.Numbering.Level); lvl != nil {
			ordered = lvl.Format != numbering.FormatBullet
		}
		p.Marker = &model.ListMarker{
			NumID:   src.Numbering.NumID,
			Level:   src.Numbering.Level,
			Label:   c.tracker.Next(src.Numbering.NumID, src.Numbering.Level),
			Ordered: ordered,
		}
	}

	return p
}

// Table resolves one table source into a model table. Cell paragraphs go
// through the same resolution as body paragraphs, so lists inside cells
// number correctly relative to the surrounding document pass.
func (c *Conversion) Table(src TableSource) *model.Table {
	t := &model.Table{
		StyleID:    src.StyleID,
		Properties: properties.MergeTable(c.styles.ResolveTable(src.StyleID), src.Direct),
		Rows:       make([]model.TableRow, 0, len(src.Rows)),
	}
	for _, rowSrc := range src.Rows {
		row := model.TableRow{
			Header: rowSrc.Header,
			Cells:  make([]model.TableCell, 0, len(rowSrc.Cells)),
		}
		for _, cellSrc := range rowSrc.Cells {
			span := cellSrc.ColSpan
			if span < 1 {
				span = 1
			}
			cell := model.TableCell{
				ColSpan:    span,
				Paragraphs: make([]*model.Paragraph, 0, len(cellSrc.Paragraphs)),
			}
			for _, ps := range cellSrc.Paragraphs {
				cell.Paragraphs = append(cell.Paragraphs, c.Paragraph(ps))
			}
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// BuildDocument converts a document's block sources, in order, into the
// flat model. Numbering state is reset first, so each call numbers its
// document from scratch.
func (c *Conversion) BuildDocument(blocks []BlockSource) *model.Document {
	c.tracker.Reset()
	doc := model.NewDocument()
	for _, b := range blocks {
		switch {
		case b.Paragraph != nil:
			doc.AddBlock(c.Paragraph(*b.Paragraph))
		case b.Table != nil:
			doc.AddBlock(c.Table(*b.Table))
		}
	}
	return doc
}

// Warnings returns all warnings recorded so far across style resolution,
// numbering indexing, and label generation.
func (c *Conversion) Warnings() []Warning {
	var out []Warning
	for _, w := range c.styles.Warnings() {
		out = append(out, fromStyleWarning(w))
	}
	for _, w := range c.defs.Warnings() {
		out = append(out, fromNumberingWarning(w))
	}
	for _, w := range c.tracker.Warnings() {
		out = append(out, fromNumberingWarning(w))
	}
	return out
}
