package numbering

import "testing"

func TestToLetter(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{1, "a"},
		{2, "b"},
		{26, "z"},
		{27, "aa"},
		{28, "ab"},
		{52, "az"},
		{53, "ba"},
		{702, "zz"},
		{703, "aaa"},
	}

	for _, tt := range tests {
		if got := toLetter(tt.value); got != tt.want {
			t.Errorf("toLetter(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestToRoman(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{1, "I"},
		{3, "III"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{90, "XC"},
		{400, "CD"},
		{900, "CM"},
		{1944, "MCMXLIV"},
		{2024, "MMXXIV"},
		{3999, "MMMCMXCIX"},
		// Above the classical range, M symbols accumulate without bound
		{4000, "MMMM"},
		{5001, "MMMMMI"},
	}

	for _, tt := range tests {
		if got := toRoman(tt.value); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name   string
		value  int
		format string
		want   string
	}{
		{"decimal", 7, FormatDecimal, "7"},
		{"lower letter", 3, FormatLowerLetter, "c"},
		{"upper letter", 27, FormatUpperLetter, "AA"},
		{"lower roman", 4, FormatLowerRoman, "iv"},
		{"upper roman", 9, FormatUpperRoman, "IX"},
		{"bullet is empty", 5, FormatBullet, ""},
		{"unknown falls back to decimal", 42, "cardinalText", "42"},
		{"empty format falls back to decimal", 42, "", "42"},
		{"letter below one falls back to decimal", 0, FormatLowerLetter, "0"},
		{"roman below one falls back to decimal", -3, FormatUpperRoman, "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value, tt.format); got != tt.want {
				t.Errorf("FormatValue(%d, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}
