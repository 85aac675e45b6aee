// Package viewmodel holds the in-memory state of the support shell: the
// selectable commands, the current selection and the running flag.
package viewmodel

// DiagnosticMessage is the fixed text produced by TriggerAction.
const DiagnosticMessage = "Hello World"

// noSelection marks an unset selection index.
const noSelection = -1

// ViewModel is the sole mutable state of the shell. It performs no I/O;
// the loop controller is its only writer.
type ViewModel struct {
	items    []string
	selected int
	running  bool
}

// New creates a running ViewModel over items with the first item selected.
// An empty item list starts with no selection.
func New(items []string) *ViewModel {
	vm := NewUnselected(items)
	if len(vm.items) > 0 {
		vm.selected = 0
	}
	return vm
}

// NewUnselected creates a running ViewModel over items with no selection.
func NewUnselected(items []string) *ViewModel {
	return &ViewModel{
		items:    append([]string(nil), items...),
		selected: noSelection,
		running:  true,
	}
}

// Items returns a copy of the item labels in display order.
func (vm *ViewModel) Items() []string {
	return append([]string(nil), vm.items...)
}

// Len returns the number of items.
func (vm *ViewModel) Len() int { return len(vm.items) }

// Selected returns the selected index and whether a selection is set.
func (vm *ViewModel) Selected() (int, bool) {
	if vm.selected == noSelection {
		return 0, false
	}
	return vm.selected, true
}

// SelectedItem returns the label of the selected item, if any.
func (vm *ViewModel) SelectedItem() (string, bool) {
	i, ok := vm.Selected()
	if !ok {
		return "", false
	}
	return vm.items[i], true
}

// Running reports whether the shell should keep cycling.
func (vm *ViewModel) Running() bool { return vm.running }

// SelectPrevious moves the selection up one row. It clamps at the first
// item and does nothing when no item is selected.
func (vm *ViewModel) SelectPrevious() {
	if vm.selected == noSelection || vm.selected == 0 {
		return
	}
	vm.selected--
}

// SelectNext moves the selection down one row. It clamps at the last item
// and does nothing when no item is selected.
func (vm *ViewModel) SelectNext() {
	if vm.selected == noSelection || vm.selected >= len(vm.items)-1 {
		return
	}
	vm.selected++
}

// Quit clears the running flag. Once cleared it is never set again.
func (vm *ViewModel) Quit() {
	vm.running = false
}

// TriggerAction returns the diagnostic for the action bound to the current
// selection. It leaves the selection and running flag untouched; emitting
// the message is the caller's job.
//
// TODO: dispatch the selected remediation command and surface its exit
// code and output in the Details pane.
func (vm *ViewModel) TriggerAction() string {
	return DiagnosticMessage
}
