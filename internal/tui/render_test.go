package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/LISSConsulting/LISSTech.SupportTools/internal/loop"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/viewmodel"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var testItems = []string{"Fix apt/dpkg", "Item 2", "Item 3"}

func frameLines(t *testing.T, vm *viewmodel.ViewModel, w, h int) []string {
	t.Helper()
	out := ansi.Strip(NewRenderer("").Frame(vm, loop.Size{Width: w, Height: h}))
	return strings.Split(out, "\n")
}

func TestFrame_Layout(t *testing.T) {
	lines := frameLines(t, viewmodel.New(testItems), 80, 24)

	if len(lines) != 24 {
		t.Fatalf("frame rows = %d, want 24", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 80 {
			t.Errorf("row %d width = %d, want 80: %q", i, w, l)
		}
	}
	if got := strings.TrimSpace(lines[0]); got != Title {
		t.Errorf("row 0 = %q, want %q", got, Title)
	}
	footer := lines[len(lines)-1]
	if !strings.Contains(footer, "q quit • e run • ↑ up • ↓ down") {
		t.Errorf("footer = %q", footer)
	}
	if !strings.Contains(lines[1], "Commands") || !strings.Contains(lines[1], "Details") {
		t.Errorf("pane titles missing from row 1: %q", lines[1])
	}
}

func TestFrame_MarksSelectedRowOnly(t *testing.T) {
	vm := viewmodel.New(testItems)
	tests := []struct {
		name string
		move func()
		want string
	}{
		{"initial", func() {}, ">> Fix apt/dpkg"},
		{"down", vm.SelectNext, ">> Item 2"},
		{"down again", vm.SelectNext, ">> Item 3"},
		{"clamped", vm.SelectNext, ">> Item 3"},
		{"up", vm.SelectPrevious, ">> Item 2"},
	}
	for _, tt := range tests {
		tt.move()
		frame := strings.Join(frameLines(t, vm, 80, 24), "\n")
		if !strings.Contains(frame, tt.want) {
			t.Errorf("%s: frame missing %q:\n%s", tt.name, tt.want, frame)
		}
		if n := strings.Count(frame, ">> "); n != 1 {
			t.Errorf("%s: marker count = %d, want 1", tt.name, n)
		}
	}
}

func TestFrame_DoesNotMutate(t *testing.T) {
	vm := viewmodel.New(testItems)
	vm.SelectNext()
	_ = NewRenderer("").Frame(vm, loop.Size{Width: 80, Height: 24})
	if idx, _ := vm.Selected(); idx != 1 || !vm.Running() {
		t.Errorf("Frame changed state: selected=%d running=%v", idx, vm.Running())
	}
}

func TestFrame_NoSelection(t *testing.T) {
	frame := strings.Join(frameLines(t, viewmodel.NewUnselected(testItems), 80, 24), "\n")
	if strings.Contains(frame, ">> ") {
		t.Errorf("unselected frame shows marker:\n%s", frame)
	}
}

func TestFrame_NarrowDropsDetails(t *testing.T) {
	lines := frameLines(t, viewmodel.New(testItems), 50, 12)
	if len(lines) != 12 {
		t.Fatalf("frame rows = %d, want 12", len(lines))
	}
	frame := strings.Join(lines, "\n")
	if strings.Contains(frame, "Details") {
		t.Errorf("narrow frame still has details pane:\n%s", frame)
	}
	if !strings.Contains(frame, ">> Fix apt/dpkg") {
		t.Errorf("narrow frame missing selection:\n%s", frame)
	}
}

func TestFrame_DetailsContent(t *testing.T) {
	frame := strings.Join(frameLines(t, viewmodel.New(testItems), 80, 24), "\n")
	if !strings.Contains(frame, "Item 1") {
		t.Errorf("details lines missing:\n%s", frame)
	}
}

func TestFrame_TooSmall(t *testing.T) {
	lines := frameLines(t, viewmodel.New(testItems), 19, 4)
	if len(lines) != 4 {
		t.Fatalf("frame rows = %d, want 4", len(lines))
	}
	frame := strings.Join(lines, "\n")
	if !strings.Contains(frame, TooSmallNotice) {
		t.Errorf("too-small frame = %q", frame)
	}
	if strings.Contains(frame, Title) {
		t.Errorf("too-small frame should not draw panes: %q", frame)
	}
}

func TestFrame_ZeroSize(t *testing.T) {
	if got := NewRenderer("").Frame(viewmodel.New(testItems), loop.Size{}); got != "" {
		t.Errorf("zero-size frame = %q, want empty", got)
	}
}

func TestHelpBindings(t *testing.T) {
	km := append(loop.Keymap{{Code: 'x', Op: loop.OpQuit}}, loop.DefaultKeymap...)
	bindings := HelpBindings(km)
	if len(bindings) != len(loop.DefaultKeymap) {
		t.Fatalf("HelpBindings() len = %d, want %d", len(bindings), len(loop.DefaultKeymap))
	}
	for i, b := range bindings {
		if !b.Enabled() {
			t.Errorf("binding %d disabled", i)
		}
		if b.Help().Key != loop.DefaultKeymap[i].Help {
			t.Errorf("binding %d key = %q, want %q", i, b.Help().Key, loop.DefaultKeymap[i].Help)
		}
	}
}

func TestNewTheme_DefaultAccent(t *testing.T) {
	got := NewTheme("").TitleStyle().GetForeground()
	if got != lipgloss.Color(DefaultAccentColor) {
		t.Errorf("default accent = %v, want %v", got, DefaultAccentColor)
	}
	custom := NewTheme("#FF0000").HighlightStyle()
	if custom.GetForeground() != lipgloss.Color("#FF0000") || !custom.GetItalic() {
		t.Errorf("custom highlight = %v italic=%v", custom.GetForeground(), custom.GetItalic())
	}
}
