package panels

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderHeader renders the title row centred across width.
func RenderHeader(title string, width int, style lipgloss.Style) string {
	title = ansi.Truncate(title, width, "…")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(title))
}
