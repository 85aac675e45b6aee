// Package panels provides the header, footer and pane renderers for the
// support shell.
package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box draws content inside a rounded border of exactly width×height cells
// with title set into the top edge. Content lines are truncated to the
// inner width and clipped or padded to the inner height.
func Box(title, content string, width, height int, borderColor lipgloss.TerminalColor) string {
	b := lipgloss.RoundedBorder()
	innerW, innerH := width-2, height-2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	title = ansi.Truncate(title, innerW, "")
	top := b.TopLeft + title + strings.Repeat(b.Top, innerW-ansi.StringWidth(title)) + b.TopRight

	body := lipgloss.NewStyle().
		Border(b, false, true, true, true).
		BorderForeground(borderColor).
		Width(innerW).
		Render(strings.Join(FitLines(content, innerW, innerH), "\n"))

	return lipgloss.NewStyle().Foreground(borderColor).Render(top) + "\n" + body
}

// FitLines splits content into exactly height lines, each at most width
// cells wide.
func FitLines(content string, width, height int) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
