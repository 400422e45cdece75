package termhost

import (
	"github.com/gdamore/tcell/v2"

	"spaceshooter/game"
)

// arrowStep is how far one arrow key press moves the ship target
const arrowStep = 60.0

// Poster receives translated input. *game.Game implements it.
type Poster interface {
	Post(ev game.Event)
}

// Input translates tcell events into game events
type Input struct {
	poster Poster
	screen tcell.Screen

	logicalW, logicalH float64

	// Keyboard steering
	x      float64
	firing bool

	// Mouse steering
	mouseDown bool
}

// NewInput creates a translator for a logical w x h screen
func NewInput(poster Poster, screen tcell.Screen, w, h float64) *Input {
	return &Input{
		poster:   poster,
		screen:   screen,
		logicalW: w,
		logicalH: h,
		x:        w / 2,
	}
}

// Handle posts the game events for ev and reports whether the user asked
// to quit
func (in *Input) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventMouse:
		in.mouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			in.poster.Post(game.Event{Kind: game.EventPause})
		}
	}
	return false
}

func (in *Input) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		in.poster.Post(game.Event{Kind: game.EventBack})
	case tcell.KeyEnter:
		in.poster.Post(game.Event{Kind: game.EventConfirm})
	case tcell.KeyLeft:
		in.steer(-arrowStep)
	case tcell.KeyRight:
		in.steer(arrowStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'p', 'P':
			in.poster.Post(game.Event{Kind: game.EventPause})
		case ' ':
			in.toggleFire()
		}
	}
	return false
}

func (in *Input) steer(dx float64) {
	in.x = min(max(in.x+dx, 0), in.logicalW)
	in.poster.Post(game.Move(in.x, in.fireY()))
}

// toggleFire presses in the ship's lane, below every menu button
func (in *Input) toggleFire() {
	in.firing = !in.firing
	if in.firing {
		in.poster.Post(game.Press(in.x, in.fireY()))
		return
	}
	in.poster.Post(game.Release())
}

func (in *Input) fireY() float64 {
	return in.logicalH * 0.85
}

func (in *Input) mouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := in.toLogical(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !in.mouseDown:
		in.poster.Post(game.Press(x, y))
	case down && in.mouseDown:
		in.poster.Post(game.Move(x, y))
	case !down && in.mouseDown:
		in.poster.Post(game.Release())
	}
	in.mouseDown = down
	if down {
		in.x = x
	}
}

// toLogical maps a cell to the logical position of its center
func (in *Input) toLogical(col, row int) (float64, float64) {
	cols, rows := in.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) * in.logicalW / float64(cols)
	y := (float64(row) + 0.5) * in.logicalH / float64(rows)
	return x, y
}
