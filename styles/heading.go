package styles

import (
	"strconv"
	"strings"
)

// HeadingLevel reports the heading level (1-9) a style represents, or 0
// for non-heading styles. Detection checks, in order: Word's built-in
// heading style IDs, a "heading" prefix in the style name, and the
// resolved outline level.
func (r *Resolver) HeadingLevel(styleID string) int {
	if level := builtInHeadingLevel(styleID); level > 0 {
		return level
	}

	def := r.styles[styleID]
	if def == nil {
		return 0
	}

	name := strings.ToLower(def.Name)
	if strings.HasPrefix(name, "heading") {
		// The first run of digits after "heading" is the level; a
		// missing or out-of-range number means a generic heading.
		rest := strings.TrimLeft(name[len("heading"):], " ")
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		if end > 0 {
			if lvl, err := strconv.Atoi(rest[:end]); err == nil && lvl >= 1 && lvl <= 9 {
				return lvl
			}
		}
		return 1
	}

	if pp := r.ResolveParagraph(styleID); pp.OutlineLevel != nil {
		if lvl := *pp.OutlineLevel; lvl >= 0 && lvl <= 8 {
			return lvl + 1 // outline level is 0-based
		}
	}

	return 0
}

// builtInHeadingLevel checks for Word's built-in heading style IDs.
func builtInHeadingLevel(styleID string) int {
	id := strings.ToLower(styleID)

	headingMap := map[string]int{
		"heading1": 1, "heading2": 2, "heading3": 3,
		"heading4": 4, "heading5": 5, "heading6": 6,
		"heading7": 7, "heading8": 8, "heading9": 9,
		"title": 1, "subtitle": 2,
	}

	return headingMap[id]
}
