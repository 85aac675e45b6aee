package panels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter renders the key hint row for bindings, centred across width.
// Disabled bindings are skipped.
func RenderFooter(bindings []key.Binding, width int) string {
	hint := ansi.Truncate(help.New().ShortHelpView(bindings), width, "…")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)
}
