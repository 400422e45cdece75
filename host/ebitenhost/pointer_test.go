package ebitenhost

import (
	"testing"

	"spaceshooter/game"
)

func TestPointerEvents(t *testing.T) {
	var p pointer

	steps := []struct {
		name string
		down bool
		x, y float64
		want []game.EventKind
	}{
		{"idle", false, 10, 10, nil},
		{"press", true, 100, 200, []game.EventKind{game.EventPress}},
		{"hold still", true, 100, 200, nil},
		{"drag", true, 150, 200, []game.EventKind{game.EventMove}},
		{"release", false, 150, 200, []game.EventKind{game.EventRelease}},
		{"hover", false, 300, 300, nil},
		{"press again", true, 300, 300, []game.EventKind{game.EventPress}},
	}

	for _, s := range steps {
		events := p.sample(nil, s.down, s.x, s.y)
		if len(events) != len(s.want) {
			t.Fatalf("%s: expected %v, got %v", s.name, s.want, events)
		}
		for i, ev := range events {
			if ev.Kind != s.want[i] {
				t.Errorf("%s: expected %v, got %v", s.name, s.want[i], ev.Kind)
			}
			if ev.Kind != game.EventRelease && (ev.X != s.x || ev.Y != s.y) {
				t.Errorf("%s: expected (%v, %v), got (%v, %v)", s.name, s.x, s.y, ev.X, ev.Y)
			}
		}
	}
}

func TestLogicalSize(t *testing.T) {
	tests := []struct {
		name         string
		outW, outH   int
		wantW, wantH int
	}{
		{"portrait 9:16", 540, 960, 1080, 1920},
		{"taller phone", 1080, 2400, 864, 1920},
		{"landscape", 1920, 1080, 3413, 1920},
		{"very narrow", 100, 1000, 480, 1920},
		{"minimized", 0, 0, 1080, 1920},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := logicalSize(tt.outW, tt.outH, 1920, minLogicalWidth)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}
