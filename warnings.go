package wordml

import (
	"fmt"
	"strings"

	"github.com/tsawler/wordml/numbering"
	"github.com/tsawler/wordml/styles"
)

// Warning describes a non-fatal condition encountered during conversion:
// a dangling style or numbering reference, an inheritance cycle, or a
// malformed numbering level. Conversion always produces a usable result;
// warnings tell the caller which parts of the input were degraded.
type Warning struct {
	Source  string // "styles" or "numbering"
	Kind    string
	Subject string // the style or numbering ID involved
	Detail  string
}

func (w Warning) String() string {
	if w.Detail != "" {
		return fmt.Sprintf("%s/%s: %s (%s)", w.Source, w.Kind, w.Subject, w.Detail)
	}
	return fmt.Sprintf("%s/%s: %s", w.Source, w.Kind, w.Subject)
}

// FormatWarnings returns a human-readable, newline-separated summary of
// warnings, suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

func fromStyleWarning(w styles.Warning) Warning {
	return Warning{
		Source:  "styles",
		Kind:    string(w.Kind),
		Subject: w.StyleID,
		Detail:  w.Ref,
	}
}

func fromNumberingWarning(w numbering.Warning) Warning {
	subject := w.NumID
	if subject == "" {
		subject = w.AbstractID
	}
	detail := ""
	if w.AbstractID != "" && w.NumID != "" {
		detail = "abstract " + w.AbstractID
	} else if w.Kind != numbering.WarnDanglingAbstract {
		detail = fmt.Sprintf("level %d", w.Level)
	}
	return Warning{
		Source:  "numbering",
		Kind:    string(w.Kind),
		Subject: subject,
		Detail:  detail,
	}
}
