// Package loop drives the render → input → update cycle of the support
// shell against an abstract Terminal.
package loop

import (
	"fmt"
	"log/slog"

	"github.com/LISSConsulting/LISSTech.SupportTools/internal/logging"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/viewmodel"
)

// Default frame size used until the terminal reports its dimensions.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a terminal size in cells.
type Size struct {
	Width, Height int
}

// Terminal is the capability the controller needs from a terminal driver.
// ReadEvent blocks until exactly one event is available. Close releases
// the terminal and must be safe to call once after any failure.
type Terminal interface {
	Render(frame string) error
	ReadEvent() (Event, error)
	Close() error
}

// RenderFunc computes a frame from the ViewModel and the terminal size.
type RenderFunc func(vm *viewmodel.ViewModel, size Size) string

// Controller owns the ViewModel for the lifetime of a Run.
type Controller struct {
	Model  *viewmodel.ViewModel
	Keymap Keymap       // nil uses DefaultKeymap
	Render RenderFunc   // frame builder; required
	Log    *slog.Logger // side channel for diagnostics; nil discards

	size Size
}

// Run cycles render, read and dispatch until the ViewModel stops running.
// It takes ownership of t and closes it exactly once on every exit path.
// Render and read failures are returned immediately, without retry.
func (c *Controller) Run(t Terminal) (err error) {
	log := c.logger()
	defer func() {
		if cerr := t.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("loop: close terminal: %w", cerr)
		}
		log.Info("loop.stop", "error", err)
	}()

	c.size = c.Size()
	log.Info("loop.start", "items", c.Model.Len())

	for c.Model.Running() {
		if err := t.Render(c.Render(c.Model, c.size)); err != nil {
			return fmt.Errorf("loop: render: %w", err)
		}
		ev, err := t.ReadEvent()
		if err != nil {
			return fmt.Errorf("loop: read event: %w", err)
		}
		c.Dispatch(ev)
	}
	return nil
}

// Dispatch applies one event and returns the Op it resolved to. Resize
// events only update the size used for the next frame. Once the model has
// stopped running every event is ignored.
func (c *Controller) Dispatch(ev Event) Op {
	if !c.Model.Running() {
		return OpNone
	}
	switch ev := ev.(type) {
	case ResizeEvent:
		c.size = Size{Width: ev.Width, Height: ev.Height}
		return OpNone
	case KeyEvent:
		op, ok := c.keymap().Lookup(ev)
		if !ok {
			return OpNone
		}
		log := c.logger()
		log.Debug("key.dispatch", "key", ev.String(), "op", op.String())
		if msg := Apply(c.Model, op); msg != "" {
			item, _ := c.Model.SelectedItem()
			log.Info("action.trigger", "message", msg, "item", item)
		}
		return op
	}
	return OpNone
}

// Size returns the terminal size the next frame will be rendered at.
func (c *Controller) Size() Size {
	if c.size == (Size{}) {
		return Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	return c.size
}

func (c *Controller) keymap() Keymap {
	if c.Keymap == nil {
		return DefaultKeymap
	}
	return c.Keymap
}

func (c *Controller) logger() *slog.Logger {
	if c.Log == nil {
		return logging.Discard()
	}
	return c.Log
}
