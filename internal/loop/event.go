package loop

import "strings"

// KeyCode identifies a key. Printable keys carry their rune value; named
// keys use the negative constants below.
type KeyCode rune

const (
	KeyUnknown KeyCode = -(iota + 1)
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
)

// String returns a short human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyUnknown:
		return "unknown"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	}
	if k < 0 {
		return "unknown"
	}
	return string(rune(k))
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// String renders the set as "ctrl+alt"-style text; empty when no modifier
// is held.
func (m Modifiers) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// KeyKind distinguishes presses from auto-repeats and releases.
type KeyKind int

const (
	KindPress KeyKind = iota
	KindRepeat
	KindRelease
)

// String returns the lowercase kind name.
func (k KeyKind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRepeat:
		return "repeat"
	case KindRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event is one input event produced by a Terminal. The concrete types are
// KeyEvent, ResizeEvent and OtherEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code KeyCode
	Mods Modifiers
	Kind KeyKind
}

// ResizeEvent reports new terminal dimensions in cells.
type ResizeEvent struct {
	Width, Height int
}

// OtherEvent is any input the shell does not act on (mouse, focus, paste).
type OtherEvent struct {
	Name string
}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (OtherEvent) isEvent()  {}

// String renders the key as "ctrl+q"-style text.
func (e KeyEvent) String() string {
	if mods := e.Mods.String(); mods != "" {
		return mods + "+" + e.Code.String()
	}
	return e.Code.String()
}

// Press builds a press-kind KeyEvent.
func Press(code KeyCode, mods Modifiers) KeyEvent {
	return KeyEvent{Code: code, Mods: mods, Kind: KindPress}
}
