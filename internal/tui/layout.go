package tui

// Minimum terminal size for the pane layout, and the width below which the
// details pane is dropped.
const (
	MinWidth   = 20
	MinHeight  = 5
	SplitWidth = 60
)

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer    Rect
	Commands, Details Rect
	TooSmall          bool // true when terminal is below MinWidth×MinHeight
}

// Calculate computes the panel layout for a terminal of the given dimensions.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Commands: left half of the body
//   - Details: right half of the body, taking the odd column
//
// Below SplitWidth columns Details is empty and Commands spans the body.
func Calculate(width, height int) Layout {
	if width < MinWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2 // subtract header + footer rows

	l := Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
	}
	if width < SplitWidth {
		l.Commands = Rect{X: 0, Y: 1, Width: width, Height: bodyH}
		return l
	}

	leftW := width / 2
	l.Commands = Rect{X: 0, Y: 1, Width: leftW, Height: bodyH}
	l.Details = Rect{X: leftW, Y: 1, Width: width - leftW, Height: bodyH}
	return l
}
