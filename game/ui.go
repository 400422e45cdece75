package game

// Button geometry
const (
	buttonWidth  = 400.0
	buttonHeight = 120.0

	pauseButtonSize   = 110.0
	pauseButtonMargin = 30.0
)

// Layout holds the button rectangles for every screen
type Layout struct {
	Start    Rect
	Continue Rect
	Restart  Rect
	Menu     Rect

	// Pause is the HUD button shown while playing
	Pause Rect
}

// NewLayout arranges the buttons around the center of a w x h screen
func NewLayout(w, h float64) Layout {
	left := w/2 - buttonWidth/2
	return Layout{
		Start:    Rect{left, h / 2, buttonWidth, buttonHeight},
		Continue: Rect{left, h/2 - 80, buttonWidth, buttonHeight},
		Restart:  Rect{left, h/2 + 60, buttonWidth, buttonHeight},
		Menu:     Rect{left, h/2 + 200, buttonWidth, buttonHeight},
		Pause: Rect{
			w - pauseButtonSize - pauseButtonMargin,
			pauseButtonMargin,
			pauseButtonSize,
			pauseButtonSize,
		},
	}
}
