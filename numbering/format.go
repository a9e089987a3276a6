package numbering

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.English)
	lowerCaser = cases.Lower(language.English)
)

// FormatValue renders a counter value in the given number format.
//
// Unknown formats render as decimal, and letter/roman formats fall back
// to decimal for values below 1, so FormatValue is total: every (value,
// format) pair produces a usable string. Roman numerals above 3999
// continue with repeated M rather than being clamped.
func FormatValue(value int, format string) string {
	switch format {
	case FormatBullet:
		// Bullet glyphs come from the level text, not the counter.
		return ""
	case FormatLowerLetter:
		return toLetter(value)
	case FormatUpperLetter:
		return upperCaser.String(toLetter(value))
	case FormatLowerRoman:
		return lowerCaser.String(toRoman(value))
	case FormatUpperRoman:
		return toRoman(value)
	default:
		return strconv.Itoa(value)
	}
}

// toLetter renders a value in bijective base-26: 1 -> a, 26 -> z,
// 27 -> aa, 702 -> zz, 703 -> aaa. Values below 1 render as decimal.
func toLetter(value int) string {
	if value < 1 {
		return strconv.Itoa(value)
	}
	var buf []byte
	for value > 0 {
		value--
		buf = append(buf, byte('a'+value%26))
		value /= 26
	}
	// Digits were produced least significant first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// romanNumerals holds the subtractive-notation symbol table, largest
// value first.
var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// toRoman renders a value as an upper-case Roman numeral in classical
// subtractive notation. Values below 1 render as decimal; values above
// 3999 accumulate M symbols without bound.
func toRoman(value int) string {
	if value < 1 {
		return strconv.Itoa(value)
	}
	var buf []byte
	for _, r := range romanNumerals {
		for value >= r.value {
			buf = append(buf, r.symbol...)
			value -= r.value
		}
	}
	return string(buf)
}
