package properties

import (
	"reflect"
	"testing"
)

func TestMergeParagraph_OverrideWins(t *testing.T) {
	base := &ParagraphProperties{
		Alignment: Ptr("left"),
		Spacing:   &Spacing{Before: Ptr(12.0), After: Ptr(8.0)},
	}
	override := &ParagraphProperties{
		Alignment: Ptr("center"),
	}

	merged := MergeParagraph(base, override)

	if got := *merged.Alignment; got != "center" {
		t.Errorf("Alignment = %q, want center", got)
	}
	// Unset override fields keep the base value
	if got := *merged.Spacing.Before; got != 12 {
		t.Errorf("Spacing.Before = %v, want 12", got)
	}
	if got := *merged.Spacing.After; got != 8 {
		t.Errorf("Spacing.After = %v, want 8", got)
	}
}

func TestMergeParagraph_NestedMerge(t *testing.T) {
	// Both sides set spacing: the aggregates merge field-wise, they do
	// not replace each other wholesale.
	base := &ParagraphProperties{
		Spacing: &Spacing{After: Ptr(160.0)},
	}
	override := &ParagraphProperties{
		Spacing: &Spacing{Before: Ptr(240.0)},
	}

	merged := MergeParagraph(base, override)

	if got := *merged.Spacing.Before; got != 240 {
		t.Errorf("Spacing.Before = %v, want 240", got)
	}
	if got := *merged.Spacing.After; got != 160 {
		t.Errorf("Spacing.After = %v, want 160", got)
	}
}

func TestMergeParagraph_ExplicitZeroOverrides(t *testing.T) {
	// An explicit zero is a real setting, distinct from unset.
	base := &ParagraphProperties{
		Spacing: &Spacing{After: Ptr(160.0)},
	}
	override := &ParagraphProperties{
		Spacing: &Spacing{After: Ptr(0.0)},
	}

	merged := MergeParagraph(base, override)

	if got := *merged.Spacing.After; got != 0 {
		t.Errorf("Spacing.After = %v, want 0", got)
	}
}

func TestMergeParagraph_TabsReplacedWholesale(t *testing.T) {
	base := &ParagraphProperties{
		Tabs: []TabStop{
			{Position: 36, Alignment: "left"},
			{Position: 72, Alignment: "left"},
		},
	}
	override := &ParagraphProperties{
		Tabs: []TabStop{
			{Position: 144, Alignment: "right", Leader: "dot"},
		},
	}

	merged := MergeParagraph(base, override)

	if len(merged.Tabs) != 1 {
		t.Fatalf("len(Tabs) = %d, want 1 (wholesale replacement)", len(merged.Tabs))
	}
	if merged.Tabs[0].Position != 144 {
		t.Errorf("Tabs[0].Position = %v, want 144", merged.Tabs[0].Position)
	}
}

func TestMergeParagraph_Idempotent(t *testing.T) {
	a := &ParagraphProperties{
		Alignment: Ptr("left"),
		Spacing:   &Spacing{Before: Ptr(240.0), After: Ptr(160.0)},
		Indentation: &Indentation{
			Left: Ptr(36.0),
		},
	}
	b := &ParagraphProperties{
		Spacing: &Spacing{After: Ptr(0.0)},
		Tabs:    []TabStop{{Position: 72, Alignment: "center"}},
	}

	once := MergeParagraph(a, b)
	twice := MergeParagraph(once, b)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge(merge(a,b), b) != merge(a,b)\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeParagraph_DoesNotMutateInputs(t *testing.T) {
	base := &ParagraphProperties{
		Spacing: &Spacing{After: Ptr(160.0)},
	}
	override := &ParagraphProperties{
		Spacing: &Spacing{After: Ptr(0.0)},
	}

	merged := MergeParagraph(base, override)

	if *base.Spacing.After != 160 {
		t.Errorf("base mutated: Spacing.After = %v", *base.Spacing.After)
	}
	if *override.Spacing.After != 0 {
		t.Errorf("override mutated: Spacing.After = %v", *override.Spacing.After)
	}

	// The result must not alias either input
	*merged.Spacing.After = 99
	if *base.Spacing.After != 160 || *override.Spacing.After != 0 {
		t.Error("merged result aliases an input")
	}
}

func TestMergeParagraph_NilInputs(t *testing.T) {
	if got := MergeParagraph(nil, nil); got == nil {
		t.Fatal("MergeParagraph(nil, nil) returned nil")
	}

	pp := &ParagraphProperties{Alignment: Ptr("both")}
	if got := MergeParagraph(nil, pp); *got.Alignment != "both" {
		t.Errorf("MergeParagraph(nil, pp).Alignment = %q, want both", *got.Alignment)
	}
	if got := MergeParagraph(pp, nil); *got.Alignment != "both" {
		t.Errorf("MergeParagraph(pp, nil).Alignment = %q, want both", *got.Alignment)
	}
}

func TestMergeParagraphChain(t *testing.T) {
	defaults := &ParagraphProperties{
		Alignment: Ptr("left"),
		Spacing:   &Spacing{After: Ptr(8.0)},
	}
	parent := &ParagraphProperties{
		Spacing: &Spacing{Before: Ptr(12.0)},
	}
	child := &ParagraphProperties{
		Alignment: Ptr("center"),
	}

	merged := MergeParagraphChain(defaults, nil, parent, child)

	if got := *merged.Alignment; got != "center" {
		t.Errorf("Alignment = %q, want center", got)
	}
	if got := *merged.Spacing.Before; got != 12 {
		t.Errorf("Spacing.Before = %v, want 12", got)
	}
	if got := *merged.Spacing.After; got != 8 {
		t.Errorf("Spacing.After = %v, want 8", got)
	}
}

func TestMergeParagraphChain_AllNil(t *testing.T) {
	merged := MergeParagraphChain(nil, nil, nil)
	if merged == nil {
		t.Fatal("all-nil chain returned nil")
	}
	if !reflect.DeepEqual(merged, &ParagraphProperties{}) {
		t.Errorf("all-nil chain = %+v, want empty", merged)
	}
}

func TestMergeRun(t *testing.T) {
	tests := []struct {
		name     string
		base     *RunProperties
		override *RunProperties
		check    func(t *testing.T, got *RunProperties)
	}{
		{
			name:     "bold off overrides bold on",
			base:     &RunProperties{Bold: Ptr(true)},
			override: &RunProperties{Bold: Ptr(false)},
			check: func(t *testing.T, got *RunProperties) {
				if *got.Bold {
					t.Error("Bold = true, want false (explicit false wins)")
				}
			},
		},
		{
			name:     "unset keeps base",
			base:     &RunProperties{Italic: Ptr(true), Size: Ptr(11.0)},
			override: &RunProperties{Size: Ptr(14.0)},
			check: func(t *testing.T, got *RunProperties) {
				if !*got.Italic {
					t.Error("Italic lost")
				}
				if *got.Size != 14 {
					t.Errorf("Size = %v, want 14", *got.Size)
				}
			},
		},
		{
			name:     "fonts merge per script",
			base:     &RunProperties{Fonts: &Fonts{ASCII: Ptr("Calibri"), EastAsia: Ptr("MS Mincho")}},
			override: &RunProperties{Fonts: &Fonts{ASCII: Ptr("Arial")}},
			check: func(t *testing.T, got *RunProperties) {
				if *got.Fonts.ASCII != "Arial" {
					t.Errorf("Fonts.ASCII = %q, want Arial", *got.Fonts.ASCII)
				}
				if *got.Fonts.EastAsia != "MS Mincho" {
					t.Errorf("Fonts.EastAsia = %q, want MS Mincho", *got.Fonts.EastAsia)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, MergeRun(tt.base, tt.override))
		})
	}
}

func TestMergeTable(t *testing.T) {
	base := &TableProperties{
		Borders: &TableBorders{
			Top: &Border{Style: Ptr("single"), Width: Ptr(0.5)},
		},
		Layout: Ptr("fixed"),
	}
	override := &TableProperties{
		Borders: &TableBorders{
			Top:     &Border{Color: Ptr("FF0000")},
			InsideH: &Border{Style: Ptr("dashed")},
		},
	}

	merged := MergeTable(base, override)

	if *merged.Layout != "fixed" {
		t.Errorf("Layout = %q, want fixed", *merged.Layout)
	}
	if *merged.Borders.Top.Style != "single" {
		t.Errorf("Borders.Top.Style = %q, want single", *merged.Borders.Top.Style)
	}
	if *merged.Borders.Top.Color != "FF0000" {
		t.Errorf("Borders.Top.Color = %q, want FF0000", *merged.Borders.Top.Color)
	}
	if *merged.Borders.InsideH.Style != "dashed" {
		t.Errorf("Borders.InsideH.Style = %q, want dashed", *merged.Borders.InsideH.Style)
	}
}

func TestRunProperties_IsZero(t *testing.T) {
	var nilRP *RunProperties
	if !nilRP.IsZero() {
		t.Error("nil RunProperties should be zero")
	}
	if !(&RunProperties{}).IsZero() {
		t.Error("empty RunProperties should be zero")
	}
	if (&RunProperties{Bold: Ptr(false)}).IsZero() {
		t.Error("explicit false Bold is set, not zero")
	}
}

func TestCloneParagraph(t *testing.T) {
	orig := &ParagraphProperties{
		Spacing: &Spacing{After: Ptr(160.0)},
		Mark:    &RunProperties{Bold: Ptr(true)},
	}
	clone := CloneParagraph(orig)

	if !reflect.DeepEqual(orig.Spacing, clone.Spacing) {
		t.Errorf("clone spacing differs: %+v vs %+v", orig.Spacing, clone.Spacing)
	}
	*clone.Spacing.After = 0
	*clone.Mark.Bold = false
	if *orig.Spacing.After != 160 || !*orig.Mark.Bold {
		t.Error("clone aliases original")
	}
}
