package templates

import (
	"slices"

	"github.com/quandora/grunt-umd-wrapper/internal/umd"
)

// Report summarizes the placeholders a template uses.
type Report struct {
	// Known lists recognized placeholders, in order of first use.
	Known []string

	// Unknown lists placeholders that will pass through unchanged.
	Unknown []string

	// Missing lists recognized placeholders the template never uses.
	Missing []string
}

// HasSource reports whether the template embeds the module body.
func (r Report) HasSource() bool {
	return slices.Contains(r.Known, string(umd.Src))
}

// Inspect reports which placeholders text uses. Unknown placeholders are not
// an error; they are how custom templates carry their own tokens.
func Inspect(text string) Report {
	var r Report
	used := make(map[string]bool)

	for _, tok := range umd.Tokens(text) {
		if isKnown(tok) {
			r.Known = append(r.Known, tok)
			used[tok] = true
			continue
		}
		r.Unknown = append(r.Unknown, tok)
	}

	for _, p := range umd.Placeholders() {
		if !used[string(p)] {
			r.Missing = append(r.Missing, string(p))
		}
	}
	return r
}

func isKnown(token string) bool {
	return slices.Contains(umd.Placeholders(), umd.Placeholder(token))
}
