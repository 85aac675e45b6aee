package main

import (
	"log/slog"

	"github.com/LISSConsulting/LISSTech.SupportTools/internal/config"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/loop"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/tui"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/viewmodel"
)

// newController wires the ViewModel, keymap and renderer for cfg.
func newController(cfg *config.Config, logger *slog.Logger) *loop.Controller {
	renderer := tui.NewRenderer(cfg.TUI.AccentColor)
	return &loop.Controller{
		Model:  viewmodel.New(commands),
		Keymap: loop.DefaultKeymap,
		Render: renderer.Frame,
		Log:    logger,
	}
}
