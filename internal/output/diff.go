package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff computes a line-oriented diff between two texts.
func LineDiff(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// RenderLineDiff renders a diff as "-"/"+" prefixed lines, keeping context
// lines around each change.
func RenderLineDiff(before, after string, context int) string {
	type line struct {
		op   diffmatchpatch.Operation
		text string
	}

	var all []line
	for _, d := range LineDiff(before, after) {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			all = append(all, line{op: d.Type, text: l})
		}
	}

	keep := make([]bool, len(all))
	for i, l := range all {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(all)-1, i+context); j++ {
			keep[j] = true
		}
	}

	added := lipgloss.NewStyle().Foreground(ColorGreen)
	removed := lipgloss.NewStyle().Foreground(ColorRed)

	var sb strings.Builder
	skipped := false
	for i, l := range all {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped && sb.Len() > 0 {
			sb.WriteString(StyleDim.Render("  ...") + "\n")
		}
		skipped = false

		switch l.op {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(added.Render("+ " + l.text))
		case diffmatchpatch.DiffDelete:
			sb.WriteString(removed.Render("- " + l.text))
		default:
			sb.WriteString("  " + l.text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
