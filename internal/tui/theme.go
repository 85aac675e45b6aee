// Package tui renders the support shell frame with lipgloss and drives the
// terminal through a bubbletea program.
package tui

import "github.com/charmbracelet/lipgloss"

// DefaultAccentColor is used when no accent is configured.
const DefaultAccentColor = "#5B9BD5"

var (
	colorGray  = lipgloss.Color("#888888")
	colorWhite = lipgloss.Color("#FAFAFA")
)

// Theme holds the accent-derived styles for one frame.
type Theme struct {
	title     lipgloss.Style
	highlight lipgloss.Style
	footer    lipgloss.Style
	notice    lipgloss.Style
	border    lipgloss.TerminalColor
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#5B9BD5").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	if accentColor == "" {
		accentColor = DefaultAccentColor
	}
	c := lipgloss.Color(accentColor)
	return Theme{
		title:     lipgloss.NewStyle().Bold(true).Foreground(c),
		highlight: lipgloss.NewStyle().Italic(true).Foreground(c),
		footer:    lipgloss.NewStyle().Foreground(colorGray),
		notice:    lipgloss.NewStyle().Foreground(colorWhite),
		border:    colorGray,
	}
}

// TitleStyle styles the header row.
func (t Theme) TitleStyle() lipgloss.Style { return t.title }

// HighlightStyle styles the selected command row.
func (t Theme) HighlightStyle() lipgloss.Style { return t.highlight }

// BorderColor colours pane borders.
func (t Theme) BorderColor() lipgloss.TerminalColor { return t.border }
