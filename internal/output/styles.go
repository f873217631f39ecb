package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, template names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "wrapped" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "stale" file status in check mode.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removed diff lines.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, targets, templates).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status values reported per processed source.
const (
	StatusWrapped   = "wrapped"
	StatusUnchanged = "unchanged"
	StatusStale     = "stale"
	StatusFailed    = "failed"
)

// StatusStyle returns the style for a file status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusWrapped:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusStale:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 48

// FormatFileLine renders a destination path with a right-aligned status and,
// when size is positive, the human-readable output size.
//
// Format: f:<path>  <status> (<size>)
func FormatFileLine(path, status string, size int64) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	line := StyleDim.Render("f:") + StyleNoun.Render(path) +
		strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
	if size > 0 {
		line += StyleDim.Render(" (" + humanize.Bytes(uint64(size)) + ")")
	}
	return line
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// Pluralize returns "1 file" or "N files".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return humanize.Comma(int64(n)) + " " + singular
	}
	return humanize.Comma(int64(n)) + " " + plural
}
