// Package ebitenhost runs the game inside an ebiten window or mobile view.
package ebitenhost

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spaceshooter/game"
	"spaceshooter/loop"
)

// minLogicalWidth keeps very tall windows playable
const minLogicalWidth = 480

// Host implements ebiten.Game. Ebiten owns the tick, so the host measures
// dt itself and feeds input into the game as events.
type Host struct {
	game   *game.Game
	canvas *Canvas
	logger *log.Logger

	clock    loop.Clock
	last     time.Time
	maxDelta float64

	height int
	width  int

	pointer  pointer
	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	focused  bool
	events   []game.Event
}

// New wraps g for ebiten
func New(g *game.Game, cfg game.Config, logger *log.Logger) (*Host, error) {
	canvas, err := NewCanvas()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	clock := loop.SystemClock{}
	return &Host{
		game:     g,
		canvas:   canvas,
		logger:   logger,
		clock:    clock,
		last:     clock.Now(),
		maxDelta: cfg.Loop.MaxDelta,
		height:   cfg.Screen.Height,
		width:    cfg.Screen.Width,
		focused:  true,
	}, nil
}

// Update is called by ebiten every tick
func (h *Host) Update() error {
	now := h.clock.Now()
	deltaTime := now.Sub(h.last).Seconds()
	h.last = now

	// Clamp delta time to prevent large jumps
	if deltaTime > h.maxDelta {
		deltaTime = h.maxDelta
	}

	h.events = h.pollInput(h.events[:0])
	for _, ev := range h.events {
		h.game.Post(ev)
	}

	h.game.Update(deltaTime)
	return nil
}

// Draw renders the game
func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.SetTarget(screen)
	h.game.Render(h.canvas)
}

// Layout returns the logical screen size for the window
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, hh := logicalSize(outsideWidth, outsideHeight, h.height, minLogicalWidth)
	if w != h.width {
		h.width = w
		h.game.Post(game.Resize(w, hh))
		h.logger.Debug("logical size changed", "width", w, "height", hh)
	}
	return w, hh
}

func (h *Host) pollInput(events []game.Event) []game.Event {
	focused := ebiten.IsFocused()
	if !focused && h.focused {
		events = append(events, game.Event{Kind: game.EventPause})
	}
	h.focused = focused

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		events = append(events, game.Event{Kind: game.EventBack})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, game.Event{Kind: game.EventConfirm})
	}

	// Touch wins over the mouse when both are present
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	if len(h.touchIDs) > 0 {
		if !h.pointer.down || !slices.Contains(h.touchIDs, h.touchID) {
			h.touchID = h.touchIDs[0]
		}
		x, y := ebiten.TouchPosition(h.touchID)
		return h.pointer.sample(events, true, float64(x), float64(y))
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()
	return h.pointer.sample(events, down, float64(x), float64(y))
}
