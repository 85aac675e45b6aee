package loop

import "github.com/LISSConsulting/LISSTech.SupportTools/internal/viewmodel"

// Op is a ViewModel operation selected by a key binding.
type Op int

const (
	OpNone Op = iota
	OpQuit
	OpTriggerAction
	OpSelectPrevious
	OpSelectNext
)

// String returns the op name used in logs.
func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpQuit:
		return "quit"
	case OpTriggerAction:
		return "trigger-action"
	case OpSelectPrevious:
		return "select-previous"
	case OpSelectNext:
		return "select-next"
	default:
		return "unknown"
	}
}

// Binding maps one key, with an exact modifier set or any modifiers, to an
// Op. Help and Desc feed the footer hint.
type Binding struct {
	Code    KeyCode
	Mods    Modifiers
	AnyMods bool
	Op      Op
	Help    string
	Desc    string
}

// Matches reports whether the binding accepts ev. Kind is not considered.
func (b Binding) Matches(ev KeyEvent) bool {
	if b.Code != ev.Code {
		return false
	}
	return b.AnyMods || b.Mods == ev.Mods
}

// Keymap is an ordered binding table; the first match wins.
type Keymap []Binding

// DefaultKeymap is the shell's fixed key table.
var DefaultKeymap = Keymap{
	{Code: 'q', AnyMods: true, Op: OpQuit, Help: "q", Desc: "quit"},
	{Code: 'e', AnyMods: true, Op: OpTriggerAction, Help: "e", Desc: "run"},
	{Code: KeyUp, Op: OpSelectPrevious, Help: "↑", Desc: "up"},
	{Code: KeyDown, Op: OpSelectNext, Help: "↓", Desc: "down"},
}

// Lookup returns the Op bound to ev. Only press-kind events resolve.
func (k Keymap) Lookup(ev KeyEvent) (Op, bool) {
	if ev.Kind != KindPress {
		return OpNone, false
	}
	for _, b := range k {
		if b.Matches(ev) {
			return b.Op, true
		}
	}
	return OpNone, false
}

// Apply performs op on vm and returns any diagnostic text it produced.
func Apply(vm *viewmodel.ViewModel, op Op) string {
	switch op {
	case OpQuit:
		vm.Quit()
	case OpTriggerAction:
		return vm.TriggerAction()
	case OpSelectPrevious:
		vm.SelectPrevious()
	case OpSelectNext:
		vm.SelectNext()
	}
	return ""
}
