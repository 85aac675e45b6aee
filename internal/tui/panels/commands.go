package panels

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HighlightSymbol prefixes the selected command row.
const HighlightSymbol = ">> "

// CommandsTitle is set into the top border of the commands pane.
const CommandsTitle = "Commands"

// commandItem wraps a command label as a list.Item.
type commandItem string

func (c commandItem) FilterValue() string { return string(c) }

// commandDelegate renders one command per line. Only a marked selection
// gets the highlight symbol; every other row is indented to the same column.
type commandDelegate struct {
	marked    bool
	highlight lipgloss.Style
}

func (d commandDelegate) Height() int                             { return 1 }
func (d commandDelegate) Spacing() int                            { return 0 }
func (d commandDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d commandDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(commandItem)
	if !ok {
		return
	}
	label := ansi.Truncate(string(ci), m.Width()-ansi.StringWidth(HighlightSymbol), "…")
	if d.marked && index == m.Index() {
		_, _ = fmt.Fprint(w, d.highlight.Render(HighlightSymbol+label))
		return
	}
	_, _ = fmt.Fprint(w, "   "+label)
}

// CommandsPanel displays the selectable command list.
type CommandsPanel struct {
	list      list.Model
	highlight lipgloss.Style
}

// NewCommandsPanel creates a commands panel with inner size w×h.
// highlight styles the selected row.
func NewCommandsPanel(labels []string, w, h int, highlight lipgloss.Style) CommandsPanel {
	items := make([]list.Item, len(labels))
	for i, l := range labels {
		items[i] = commandItem(l)
	}
	l := list.New(items, commandDelegate{highlight: highlight}, w, h)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return CommandsPanel{list: l, highlight: highlight}
}

// Select moves the highlight to index i. With ok false no row is marked.
func (p CommandsPanel) Select(i int, ok bool) CommandsPanel {
	if ok {
		p.list.Select(i)
	}
	p.list.SetDelegate(commandDelegate{marked: ok, highlight: p.highlight})
	return p
}

// View renders the list without its border.
func (p CommandsPanel) View() string {
	return p.list.View()
}
