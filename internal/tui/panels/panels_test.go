package panels

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestBox_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		width, height int
	}{
		{"fits", "a\nb", 20, 6},
		{"clips rows", "1\n2\n3\n4\n5\n6\n7", 12, 4},
		{"truncates wide line", strings.Repeat("x", 50), 10, 3},
		{"empty", "", 8, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(Box("Title", tt.content, tt.width, tt.height, lipgloss.Color("#888888")))
			lines := strings.Split(out, "\n")
			if len(lines) != tt.height {
				t.Fatalf("Box() rows = %d, want %d; output:\n%s", len(lines), tt.height, out)
			}
			for i, l := range lines {
				if w := ansi.StringWidth(l); w != tt.width {
					t.Errorf("row %d width = %d, want %d: %q", i, w, tt.width, l)
				}
			}
		})
	}
}

func TestBox_TitleInTopBorder(t *testing.T) {
	out := ansi.Strip(Box("Commands", "x", 20, 4, lipgloss.Color("#888888")))
	top := strings.Split(out, "\n")[0]
	if !strings.HasPrefix(top, "╭Commands") || !strings.HasSuffix(top, "╮") {
		t.Errorf("top border = %q, want title after the corner", top)
	}
}

func TestFitLines(t *testing.T) {
	got := FitLines("one\ntwo\nthree", 3, 2)
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("FitLines() = %q", got)
	}
	got = FitLines("a", 5, 3)
	if len(got) != 3 || got[2] != "" {
		t.Errorf("FitLines() padding = %q", got)
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Support Tools", 41, lipgloss.NewStyle().Bold(true))
	if w := lipgloss.Width(out); w != 41 {
		t.Errorf("header width = %d, want 41", w)
	}
	plain := ansi.Strip(out)
	if strings.TrimSpace(plain) != "Support Tools" {
		t.Errorf("header = %q", plain)
	}
	if !strings.HasPrefix(plain, "              Support") {
		t.Errorf("header not centred: %q", plain)
	}
}

func TestRenderHeader_Narrow(t *testing.T) {
	out := ansi.Strip(RenderHeader("Support Tools", 6, lipgloss.NewStyle()))
	if w := ansi.StringWidth(out); w > 6 {
		t.Errorf("narrow header width = %d, want <= 6: %q", w, out)
	}
}

func TestRenderFooter(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "run")),
	}
	out := ansi.Strip(RenderFooter(bindings, 60))
	for _, want := range []string{"q quit", "e run"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q: %q", want, out)
		}
	}
	if w := ansi.StringWidth(out); w != 60 {
		t.Errorf("footer width = %d, want 60", w)
	}
}

func TestRenderFooter_SkipsDisabled(t *testing.T) {
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	off.SetEnabled(false)
	out := RenderFooter([]key.Binding{off}, 40)
	if strings.Contains(out, "hidden") {
		t.Errorf("disabled binding rendered: %q", out)
	}
}

var labels = []string{"Fix apt/dpkg", "Item 2", "Item 3"}

func TestCommandsPanel_MarksSelection(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, ">> Fix apt/dpkg"},
		{1, ">> Item 2"},
		{2, ">> Item 3"},
	}
	for _, tt := range tests {
		p := NewCommandsPanel(labels, 30, 10, lipgloss.NewStyle().Italic(true)).Select(tt.index, true)
		out := ansi.Strip(p.View())
		if !strings.Contains(out, tt.want) {
			t.Errorf("Select(%d) view missing %q:\n%s", tt.index, tt.want, out)
		}
		if n := strings.Count(out, HighlightSymbol); n != 1 {
			t.Errorf("Select(%d) marker count = %d, want 1", tt.index, n)
		}
	}
}

func TestCommandsPanel_UnmarkedRowsAligned(t *testing.T) {
	p := NewCommandsPanel(labels, 30, 10, lipgloss.NewStyle()).Select(0, true)
	out := ansi.Strip(p.View())
	if !strings.Contains(out, "   Item 2") {
		t.Errorf("unselected row not indented to marker width:\n%s", out)
	}
}

func TestCommandsPanel_NoSelection(t *testing.T) {
	p := NewCommandsPanel(labels, 30, 10, lipgloss.NewStyle()).Select(0, false)
	out := ansi.Strip(p.View())
	if strings.Contains(out, HighlightSymbol) {
		t.Errorf("unselected panel shows marker:\n%s", out)
	}
	if !strings.Contains(out, "Fix apt/dpkg") {
		t.Errorf("labels missing:\n%s", out)
	}
}

func TestRenderDetails(t *testing.T) {
	if got := RenderDetails(DefaultDetails); got != "Item 1\nItem 2\nItem 3" {
		t.Errorf("RenderDetails() = %q", got)
	}
}
