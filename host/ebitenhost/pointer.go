package ebitenhost

import (
	"spaceshooter/game"
)

// pointer turns sampled touch or mouse state into press/move/release
// events. Only one pointer steers the ship at a time.
type pointer struct {
	down bool
	x, y float64
}

// sample compares the current state with the last one and appends the
// resulting events
func (p *pointer) sample(events []game.Event, down bool, x, y float64) []game.Event {
	switch {
	case down && !p.down:
		events = append(events, game.Press(x, y))
	case down && p.down && (x != p.x || y != p.y):
		events = append(events, game.Move(x, y))
	case !down && p.down:
		events = append(events, game.Release())
	}

	p.down = down
	if down {
		p.x, p.y = x, y
	}
	return events
}

// logicalSize keeps the logical height fixed and widens or narrows the
// playfield to the window's aspect ratio
func logicalSize(outsideWidth, outsideHeight, height, minWidth int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(minWidth, height*9/16), height
	}
	w := int(float64(height) * float64(outsideWidth) / float64(outsideHeight))
	return max(minWidth, w), height
}
