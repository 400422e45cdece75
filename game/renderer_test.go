package game

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

// recordingCanvas keeps a log of draw calls
type recordingCanvas struct {
	fills    int
	rects    int
	strokes  int
	circles  int
	polygons int
	images   int
	texts    []string
}

func (c *recordingCanvas) Fill(color.Color) { c.fills++ }
func (c *recordingCanvas) FillRect(_, _, _, _ float64, _ color.Color) { c.rects++ }
func (c *recordingCanvas) StrokeRect(_, _, _, _, _ float64, _ color.Color) { c.strokes++ }
func (c *recordingCanvas) FillCircle(_, _, _ float64, _ color.Color) { c.circles++ }
func (c *recordingCanvas) FillPolygon(_ []Point, _ color.Color) { c.polygons++ }
func (c *recordingCanvas) DrawImage(_ image.Image, _, _, _, _ float64) { c.images++ }
func (c *recordingCanvas) DrawText(s string, _, _, _ float64, _ Align, _ color.Color) {
	c.texts = append(c.texts, s)
}

func (c *recordingCanvas) hasText(s string) bool {
	return slices.Contains(c.texts, s)
}

func TestRenderMenu(t *testing.T) {
	g, _ := newTestGame(t)
	c := &recordingCanvas{}
	g.Render(c)

	if c.fills != 1 {
		t.Errorf("Expected one background fill, got %d", c.fills)
	}
	for _, want := range []string{"SPACE SHOOTER", "START"} {
		if !c.hasText(want) {
			t.Errorf("Expected %q on the menu, got %v", want, c.texts)
		}
	}
	if c.hasText("Best: 0") {
		t.Errorf("Expected no best score before the first game")
	}

	g.bestScore = 40
	c = &recordingCanvas{}
	g.Render(c)
	if !c.hasText("Best: 40") {
		t.Errorf("Expected the best score on the menu, got %v", c.texts)
	}
}

func TestRenderPlaying(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()
	g.bullets = append(g.bullets, NewBullet(100, 100, 900), NewBullet(200, 100, 900))
	g.enemies = append(g.enemies, stillEnemy(g, 100, 100, 0))
	g.explosions = append(g.explosions, NewExplosion(100, 100, g.rng))

	c := &recordingCanvas{}
	g.Render(c)

	for _, want := range []string{"Score: 0", "Lives: 3", "Wave: 1"} {
		if !c.hasText(want) {
			t.Errorf("Expected %q in the HUD, got %v", want, c.texts)
		}
	}
	if c.strokes != 2 {
		t.Errorf("Expected one outline per bullet, got %d", c.strokes)
	}
	// player cockpit + enemy eye + particles
	if c.circles != 2+explosionParticles {
		t.Errorf("Expected %d circles, got %d", 2+explosionParticles, c.circles)
	}
	if c.polygons != 3 {
		t.Errorf("Expected 2 player polygons and 1 enemy polygon, got %d", c.polygons)
	}
}

func TestRenderPaused(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()
	g.Post(Event{Kind: EventBack})
	g.Update(0)

	c := &recordingCanvas{}
	g.Render(c)

	for _, want := range []string{"PAUSED", "CONTINUE", "RESTART"} {
		if !c.hasText(want) {
			t.Errorf("Expected %q on the pause screen, got %v", want, c.texts)
		}
	}
	if c.hasText("Score: 0") {
		t.Errorf("Expected no HUD under the pause overlay")
	}
}

func TestRenderGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()
	g.score = 30
	g.kills = 3
	g.wave = 2
	g.lives = 1
	g.loseLife("test")

	c := &recordingCanvas{}
	g.Render(c)

	for _, want := range []string{"GAME OVER", "Final score: 30", "Wave reached: 2", "Enemies destroyed: 3", "Best: 30", "MENU"} {
		if !c.hasText(want) {
			t.Errorf("Expected %q on the game over screen, got %v", want, c.texts)
		}
	}
}

func TestSpriteStyleDrawsImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	g := NewGame(DefaultConfig(), Options{
		Style: SpriteStyle{Sprites: Sprites{Player: img, Enemy: img}},
	})
	g.StartGame()
	g.enemies = append(g.enemies, stillEnemy(g, 100, 100, 0), stillEnemy(g, 400, 100, 0))

	c := &recordingCanvas{}
	g.Render(c)

	if c.images != 3 {
		t.Errorf("Expected 3 sprite blits, got %d", c.images)
	}
	if c.polygons != 0 {
		t.Errorf("Expected no vector ships, got %d polygons", c.polygons)
	}
}
