// Package termhost runs the game in a terminal with tcell.
package termhost

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"spaceshooter/game"
	"spaceshooter/loop"
)

// Host owns the terminal screen and the loop driving the game
type Host struct {
	screen  tcell.Screen
	surface *Surface
	input   *Input
	runner  *loop.Runner
	logger  *log.Logger
}

// New prepares an initialized screen for g. The caller owns the screen
// and calls Fini after Run returns.
func New(screen tcell.Screen, g *game.Game, cfg game.Config, opts loop.Options) *Host {
	w, h := float64(cfg.Screen.Width), float64(cfg.Screen.Height)

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.FPS <= 0 {
		opts.FPS = cfg.Loop.FPS
	}
	if opts.MaxDelta <= 0 {
		opts.MaxDelta = cfg.Loop.MaxDelta
	}

	surface := NewSurface(screen, w, h)
	return &Host{
		screen:  screen,
		surface: surface,
		input:   NewInput(g, screen, w, h),
		runner:  loop.New(g, surface, opts),
		logger:  opts.Logger,
	}
}

// Run starts the loop and handles terminal events until the user quits or
// ctx is done. The loop has stopped by the time Run returns.
func (h *Host) Run(ctx context.Context) error {
	if err := h.runner.Start(); err != nil {
		return fmt.Errorf("start loop: %w", err)
	}
	defer h.runner.Stop()

	go func() {
		select {
		case <-ctx.Done():
			// Wake PollEvent
			h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-h.runner.Done():
		}
	}()

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				h.logger.Debug("terminal host cancelled")
				return nil
			}
		case *tcell.EventResize:
			h.runner.WithSurface(h.surface.Resync)
			cols, rows := ev.Size()
			h.logger.Debug("terminal resized", "cols", cols, "rows", rows)
		default:
			if h.input.Handle(ev) {
				h.logger.Info("quit requested")
				return nil
			}
		}
	}
}

// Frames returns how many frames the loop has run
func (h *Host) Frames() uint64 {
	return h.runner.Frames()
}
