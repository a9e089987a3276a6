package numbering

import "testing"

func TestDefinitions_Level(t *testing.T) {
	abstracts := []AbstractDefinition{
		{
			ID: "0",
			Levels: []Level{
				{Index: 0, Start: 1, Format: FormatDecimal, Text: "%1."},
				{Index: 1, Start: 1, Format: FormatLowerLetter, Text: "%2)"},
			},
		},
	}
	instances := []Instance{
		{ID: "1", AbstractID: "0"},
	}
	d := NewDefinitions(abstracts, instances)

	t.Run("existing level", func(t *testing.T) {
		lvl := d.Level("1", 0)
		if lvl == nil {
			t.Fatal("Level(1, 0) = nil")
		}
		if lvl.Format != FormatDecimal || lvl.Text != "%1." {
			t.Errorf("level = %+v", lvl)
		}
	})

	t.Run("unknown numId", func(t *testing.T) {
		if lvl := d.Level("99", 0); lvl != nil {
			t.Errorf("Level(99, 0) = %+v, want nil", lvl)
		}
	})

	t.Run("absent level", func(t *testing.T) {
		if lvl := d.Level("1", 5); lvl != nil {
			t.Errorf("Level(1, 5) = %+v, want nil", lvl)
		}
	})

	t.Run("returned level is a copy", func(t *testing.T) {
		lvl := d.Level("1", 0)
		lvl.Start = 99
		if d.Level("1", 0).Start != 1 {
			t.Error("mutating a returned level changed the index")
		}
	})
}

func TestDefinitions_DanglingAbstract(t *testing.T) {
	instances := []Instance{
		{ID: "7", AbstractID: "missing"},
	}
	d := NewDefinitions(nil, instances)

	if lvl := d.Level("7", 0); lvl != nil {
		t.Errorf("Level(7, 0) = %+v, want nil", lvl)
	}

	warnings := d.Warnings()
	if len(warnings) != 1 || warnings[0].Kind != WarnDanglingAbstract {
		t.Errorf("warnings = %v, want one dangling-abstract-num", warnings)
	}
}

func TestDefinitions_MalformedLevelsSkipped(t *testing.T) {
	abstracts := []AbstractDefinition{
		{
			ID: "0",
			Levels: []Level{
				{Index: 0, Start: 1, Format: FormatDecimal, Text: "%1."},
				{Index: 9, Start: 1, Format: FormatDecimal, Text: "%1."},  // ilvl out of range
				{Index: -1, Start: 1, Format: FormatDecimal, Text: "%1."}, // ilvl out of range
				{Index: 1, Start: 1, Format: "", Text: "%2."},             // missing numFmt
			},
		},
	}
	instances := []Instance{{ID: "1", AbstractID: "0"}}
	d := NewDefinitions(abstracts, instances)

	if d.Level("1", 0) == nil {
		t.Error("well-formed level was dropped")
	}
	if d.Level("1", 9) != nil || d.Level("1", -1) != nil || d.Level("1", 1) != nil {
		t.Error("malformed level survived indexing")
	}
	if got := len(d.Warnings()); got != 3 {
		t.Errorf("len(warnings) = %d, want 3: %v", got, d.Warnings())
	}
}

func TestDefinitions_StartOverride(t *testing.T) {
	abstracts := []AbstractDefinition{
		{ID: "0", Levels: []Level{{Index: 0, Start: 1, Format: FormatDecimal, Text: "%1."}}},
	}
	instances := []Instance{
		{ID: "5", AbstractID: "0", Overrides: []LevelOverride{{Level: 0, Start: 5}}},
		{ID: "6", AbstractID: "0"},
	}
	d := NewDefinitions(abstracts, instances)

	if start, ok := d.StartOverride("5", 0); !ok || start != 5 {
		t.Errorf("StartOverride(5, 0) = %d, %v; want 5, true", start, ok)
	}
	if _, ok := d.StartOverride("5", 1); ok {
		t.Error("StartOverride(5, 1) reported an override for an untouched level")
	}
	if _, ok := d.StartOverride("6", 0); ok {
		t.Error("StartOverride(6, 0) reported an override for an instance without overrides")
	}
}
