package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws overlay on top of base with its top-left corner at column x,
// row y. Rows past height are left out.
func overlayAt(base, overlay string, x, y, width, height int) string {
	rows := splitLines(base)
	modal := splitLines(overlay)
	modalWidth := maxLineWidth(modal)
	for i, line := range modal {
		if row := y + i; row >= 0 && row < len(rows) && row < height {
			rows[row] = splice(padRight(rows[row], width), padRight(line, modalWidth), x)
		}
	}
	return strings.Join(rows, "\n")
}

// splice replaces the cells of line starting at column x with insert. The
// cells before x and after the insert keep their styling.
func splice(line, insert string, x int) string {
	head := padRight(ansi.Truncate(line, x, ""), x)
	tail := ansi.TruncateLeft(line, x+ansi.StringWidth(insert), "")
	return head + insert + tail
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces to the given visual width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// fit truncates s to width cells with an ellipsis and pads it out to width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return padRight(ansi.Truncate(s, width, "…"), width)
}
