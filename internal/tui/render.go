package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/LISSConsulting/LISSTech.SupportTools/internal/loop"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/tui/panels"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/viewmodel"
)

// Title is the header row text.
const Title = "Support Tools"

// TooSmallNotice replaces the frame when the terminal is below the minimum.
const TooSmallNotice = "terminal too small"

// Renderer builds frames. It reads the ViewModel and never changes it.
type Renderer struct {
	Title   string
	Details []string
	Keymap  loop.Keymap
	Theme   Theme
}

// NewRenderer returns a Renderer with the default title, details and keymap.
func NewRenderer(accentColor string) *Renderer {
	return &Renderer{
		Title:   Title,
		Details: panels.DefaultDetails,
		Keymap:  loop.DefaultKeymap,
		Theme:   NewTheme(accentColor),
	}
}

// Frame renders vm at size. It satisfies loop.RenderFunc.
func (r *Renderer) Frame(vm *viewmodel.ViewModel, size loop.Size) string {
	l := Calculate(size.Width, size.Height)
	if l.TooSmall {
		if size.Width <= 0 || size.Height <= 0 {
			return ""
		}
		notice := ansi.Truncate(TooSmallNotice, size.Width, "")
		return lipgloss.Place(size.Width, size.Height, lipgloss.Center, lipgloss.Center,
			r.Theme.notice.Render(notice))
	}

	header := panels.RenderHeader(r.Title, l.Header.Width, r.Theme.TitleStyle())
	footer := r.Theme.footer.Render(panels.RenderFooter(HelpBindings(r.Keymap), l.Footer.Width))

	body := r.commands(vm, l.Commands)
	if !l.Details.Empty() {
		details := panels.Box(panels.DetailsTitle, panels.RenderDetails(r.Details),
			l.Details.Width, l.Details.Height, r.Theme.BorderColor())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, details)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (r *Renderer) commands(vm *viewmodel.ViewModel, rect Rect) string {
	innerW, innerH := rect.Width-2, rect.Height-2
	idx, ok := vm.Selected()
	p := panels.NewCommandsPanel(vm.Items(), innerW, innerH, r.Theme.HighlightStyle()).Select(idx, ok)
	return panels.Box(panels.CommandsTitle, strings.TrimRight(p.View(), "\n"),
		rect.Width, rect.Height, r.Theme.BorderColor())
}

// HelpBindings converts the keymap's documented bindings into help entries.
func HelpBindings(km loop.Keymap) []key.Binding {
	var out []key.Binding
	for _, b := range km {
		if b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(b.Code.String()),
			key.WithHelp(b.Help, b.Desc),
		))
	}
	return out
}
