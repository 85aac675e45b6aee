package tui

import (
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/LISSConsulting/LISSTech.SupportTools/internal/loop"
)

var (
	// ErrNotTerminal is returned by Open when stdin or stdout is not a TTY.
	ErrNotTerminal = errors.New("tui: stdin and stdout must be a terminal")
	// ErrClosed is returned by Render and ReadEvent after the program exits.
	ErrClosed = errors.New("tui: terminal closed")
)

// Terminal implements loop.Terminal on top of a bubbletea program. The
// program only draws frames and forwards input; every decision is made by
// the loop controller.
type Terminal struct {
	program *tea.Program
	queue   *eventQueue
	done    chan struct{}
	runErr  error // written before done is closed

	closeOnce sync.Once
	closeErr  error
}

// Open checks that the process is attached to a terminal and starts the
// program on the alternate screen.
func Open(opts ...tea.ProgramOption) (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	return Start(append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}

// Start runs the program with opts and no terminal check.
func Start(opts ...tea.ProgramOption) (*Terminal, error) {
	q := newEventQueue()
	t := &Terminal{
		program: tea.NewProgram(driverModel{queue: q}, opts...),
		queue:   q,
		done:    make(chan struct{}),
	}
	go func() {
		_, err := t.program.Run()
		t.runErr = err
		close(t.done)
	}()
	return t, nil
}

// Render hands frame to the program for drawing.
func (t *Terminal) Render(frame string) error {
	select {
	case <-t.done:
		return t.exitErr()
	default:
	}
	t.program.Send(frameMsg(frame))
	return nil
}

// ReadEvent returns the next input event, blocking until one arrives.
func (t *Terminal) ReadEvent() (loop.Event, error) {
	for {
		if ev, ok := t.queue.pop(); ok {
			return ev, nil
		}
		select {
		case <-t.queue.ready:
		case <-t.done:
			if ev, ok := t.queue.pop(); ok {
				return ev, nil
			}
			return nil, t.exitErr()
		}
	}
}

// Close quits the program and waits for the terminal to be restored.
// Later calls return the first result.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.program.Quit()
		<-t.done
		if t.runErr != nil && !errors.Is(t.runErr, tea.ErrProgramKilled) {
			t.closeErr = fmt.Errorf("tui: program: %w", t.runErr)
		}
	})
	return t.closeErr
}

func (t *Terminal) exitErr() error {
	if t.runErr != nil && !errors.Is(t.runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: program: %w", t.runErr)
	}
	return ErrClosed
}

// frameMsg carries a rendered frame into the program.
type frameMsg string

// driverModel is the bubbletea model inside Terminal. It shows the last
// frame and queues input.
type driverModel struct {
	frame string
	queue *eventQueue
}

func (m driverModel) Init() tea.Cmd { return nil }

func (m driverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
	case tea.KeyMsg:
		m.queue.push(translateKey(msg))
	case tea.WindowSizeMsg:
		m.queue.push(loop.ResizeEvent{Width: msg.Width, Height: msg.Height})
	case tea.MouseMsg:
		m.queue.push(loop.OtherEvent{Name: "mouse"})
	case tea.FocusMsg:
		m.queue.push(loop.OtherEvent{Name: "focus"})
	case tea.BlurMsg:
		m.queue.push(loop.OtherEvent{Name: "blur"})
	default:
		m.queue.push(loop.OtherEvent{Name: fmt.Sprintf("%T", msg)})
	}
	return m, nil
}

func (m driverModel) View() string { return m.frame }

// translateKey maps a bubbletea key to a loop event. Bubbletea reports key
// presses only, so every key event is press-kind.
func translateKey(msg tea.KeyMsg) loop.Event {
	if msg.Paste {
		return loop.OtherEvent{Name: "paste"}
	}

	var mods loop.Modifiers
	if msg.Alt {
		mods |= loop.ModAlt
	}

	code := loop.KeyUnknown
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return loop.OtherEvent{Name: "runes"}
		}
		code = loop.KeyCode(msg.Runes[0])
	case tea.KeySpace:
		code = ' '
	case tea.KeyUp:
		code = loop.KeyUp
	case tea.KeyDown:
		code = loop.KeyDown
	case tea.KeyLeft:
		code = loop.KeyLeft
	case tea.KeyRight:
		code = loop.KeyRight
	case tea.KeyShiftUp:
		code, mods = loop.KeyUp, mods|loop.ModShift
	case tea.KeyShiftDown:
		code, mods = loop.KeyDown, mods|loop.ModShift
	case tea.KeyShiftLeft:
		code, mods = loop.KeyLeft, mods|loop.ModShift
	case tea.KeyShiftRight:
		code, mods = loop.KeyRight, mods|loop.ModShift
	case tea.KeyCtrlUp:
		code, mods = loop.KeyUp, mods|loop.ModCtrl
	case tea.KeyCtrlDown:
		code, mods = loop.KeyDown, mods|loop.ModCtrl
	case tea.KeyCtrlLeft:
		code, mods = loop.KeyLeft, mods|loop.ModCtrl
	case tea.KeyCtrlRight:
		code, mods = loop.KeyRight, mods|loop.ModCtrl
	case tea.KeyCtrlShiftUp:
		code, mods = loop.KeyUp, mods|loop.ModCtrl|loop.ModShift
	case tea.KeyCtrlShiftDown:
		code, mods = loop.KeyDown, mods|loop.ModCtrl|loop.ModShift
	case tea.KeyCtrlShiftLeft:
		code, mods = loop.KeyLeft, mods|loop.ModCtrl|loop.ModShift
	case tea.KeyCtrlShiftRight:
		code, mods = loop.KeyRight, mods|loop.ModCtrl|loop.ModShift
	case tea.KeyEnter:
		code = loop.KeyEnter
	case tea.KeyEsc:
		code = loop.KeyEsc
	case tea.KeyTab:
		code = loop.KeyTab
	case tea.KeyShiftTab:
		code, mods = loop.KeyTab, mods|loop.ModShift
	case tea.KeyBackspace:
		code = loop.KeyBackspace
	default:
		// Enter, Tab and Esc share values with ctrl+m, ctrl+i and ctrl+[
		// and are matched above.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			code = loop.KeyCode('a' + rune(msg.Type-tea.KeyCtrlA))
			mods |= loop.ModCtrl
		}
	}
	return loop.Press(code, mods)
}

// eventQueue is an unbounded FIFO. push never blocks, so the bubbletea
// event loop cannot stall behind a slow reader.
type eventQueue struct {
	mu     sync.Mutex
	events []loop.Event
	ready  chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{ready: make(chan struct{}, 1)}
}

func (q *eventQueue) push(ev loop.Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *eventQueue) pop() (loop.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}
