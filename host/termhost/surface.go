package termhost

import (
	"errors"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"spaceshooter/game"
)

// ErrNoRoom is returned by Acquire while the terminal has no cells
var ErrNoRoom = errors.New("terminal has no room to draw")

// upperHalf shows the top pixel in the foreground and the bottom pixel in
// the background of one cell
const upperHalf = '▀'

// Surface implements loop.Surface on a tcell screen
type Surface struct {
	screen tcell.Screen
	canvas *Canvas
}

// NewSurface draws a logical w x h screen scaled into the terminal
func NewSurface(screen tcell.Screen, w, h float64) *Surface {
	return &Surface{
		screen: screen,
		canvas: NewCanvas(w, h),
	}
}

// Acquire sizes the canvas to the terminal and clears it
func (s *Surface) Acquire() (game.Canvas, error) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, ErrNoRoom
	}
	s.canvas.resize(cols, rows)
	return s.canvas, nil
}

// Present copies the canvas into the screen and shows it
func (s *Surface) Present(game.Canvas) error {
	c := s.canvas
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[(row*2)*c.cols+col]
			bottom := c.pix[(row*2+1)*c.cols+col]

			if g := c.text[row*c.cols+col]; g.r != 0 {
				style := tcell.StyleDefault.Foreground(cellColor(g.fg)).Background(cellColor(bottom))
				s.screen.SetContent(col, row, g.r, nil, style)
				continue
			}

			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			s.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Resync redraws the whole terminal on the next Show, after a resize
func (s *Surface) Resync() {
	s.screen.Sync()
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
