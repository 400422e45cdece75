package game

import (
	"fmt"
	"image"
	"image/color"
)

// Align is the horizontal anchor of a text draw
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Point is a vertex in screen coordinates
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface a host hands to the renderer. Coordinates
// are logical screen pixels.
type Canvas interface {
	// Fill paints the whole surface
	Fill(clr color.Color)

	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, strokeWidth float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	FillPolygon(points []Point, clr color.Color)

	// DrawText draws a single line whose vertical middle sits at y
	DrawText(s string, x, y, size float64, align Align, clr color.Color)

	// DrawImage scales img into the given rectangle
	DrawImage(img image.Image, x, y, w, h float64)
}

// Renderer handles rendering of each game screen
type Renderer struct {
	style Style
}

// NewRenderer creates a new renderer drawing ships with style
func NewRenderer(style Style) *Renderer {
	return &Renderer{
		style: style,
	}
}

// Render dispatches on the game state
func (r *Renderer) Render(c Canvas, g *Game) {
	c.Fill(colorBackground)

	switch g.state {
	case StateMenu:
		r.renderMenu(c, g)
	case StatePlaying:
		r.renderPlaying(c, g)
		r.renderHUD(c, g)
	case StatePaused:
		r.renderPlaying(c, g)
		r.renderPaused(c, g)
	case StateGameOver:
		r.renderGameOver(c, g)
	}
}

func (r *Renderer) renderMenu(c Canvas, g *Game) {
	c.DrawText("SPACE SHOOTER", g.screenWidth/2, g.screenHeight/3, textSizeTitle, AlignCenter, colorText)
	if g.bestScore > 0 {
		c.DrawText(fmt.Sprintf("Best: %d", g.bestScore), g.screenWidth/2, g.screenHeight/3+110, textSizeButton, AlignCenter, colorText)
	}
	drawButton(c, g.layout.Start, "START", colorStartButton)
}

func (r *Renderer) renderPlaying(c Canvas, g *Game) {
	r.style.DrawPlayer(c, g.player)

	for _, b := range g.bullets {
		drawBullet(c, b)
	}

	for _, e := range g.enemies {
		r.style.DrawEnemy(c, e)
	}

	for _, ex := range g.explosions {
		drawExplosion(c, ex)
	}
}

func (r *Renderer) renderHUD(c Canvas, g *Game) {
	c.DrawText(fmt.Sprintf("Score: %d", g.score), 30, 60, textSizeHUD, AlignLeft, colorText)
	c.DrawText(fmt.Sprintf("Lives: %d", g.lives), 30, 120, textSizeHUD, AlignLeft, colorText)
	c.DrawText(fmt.Sprintf("Wave: %d", g.wave), 30, 180, textSizeHUD, AlignLeft, colorText)

	// Pause button: two bars inside a translucent square
	p := g.layout.Pause
	c.FillRect(p.X, p.Y, p.W, p.H, colorPauseButton)
	barW := p.W / 5
	barH := p.H * 0.6
	top := p.Y + (p.H-barH)/2
	c.FillRect(p.X+p.W/2-barW*1.5, top, barW, barH, colorText)
	c.FillRect(p.X+p.W/2+barW*0.5, top, barW, barH, colorText)
}

func (r *Renderer) renderPaused(c Canvas, g *Game) {
	c.FillRect(0, 0, g.screenWidth, g.screenHeight, colorOverlay)
	c.DrawText("PAUSED", g.screenWidth/2, g.screenHeight/3, textSizeTitle, AlignCenter, colorText)
	drawButton(c, g.layout.Continue, "CONTINUE", colorStartButton)
	drawButton(c, g.layout.Restart, "RESTART", colorRestartButton)
}

func (r *Renderer) renderGameOver(c Canvas, g *Game) {
	c.DrawText("GAME OVER", g.screenWidth/2, g.screenHeight/3, textSizeTitle, AlignCenter, colorGameOver)

	lines := []string{
		fmt.Sprintf("Final score: %d", g.score),
		fmt.Sprintf("Wave reached: %d", g.wave),
		fmt.Sprintf("Enemies destroyed: %d", g.kills),
		fmt.Sprintf("Best: %d", g.bestScore),
	}
	y := g.screenHeight / 2.5
	for _, line := range lines {
		c.DrawText(line, g.screenWidth/2, y, textSizeButton, AlignCenter, colorText)
		y += 70
	}

	drawButton(c, g.layout.Menu, "MENU", colorMenuButton)
}

func drawButton(c Canvas, r Rect, label string, clr color.Color) {
	c.FillRect(r.X, r.Y, r.W, r.H, clr)
	cx, cy := r.Center()
	c.DrawText(label, cx, cy, textSizeButton, AlignCenter, colorButtonText)
}

func drawBullet(c Canvas, b *Bullet) {
	c.FillRect(b.X, b.Y, b.Width, b.Height, colorBullet)
	c.FillRect(b.X+2, b.Y+2, b.Width-4, b.Height/2-2, colorBulletCore)
	c.StrokeRect(b.X, b.Y, b.Width, b.Height, 2, colorBulletOutline)
}

func drawExplosion(c Canvas, ex *Explosion) {
	alpha := ex.Alpha()
	for _, p := range ex.Particles {
		clr := p.Color
		clr.A = uint8(float64(clr.A) * alpha)
		c.FillCircle(p.X, p.Y, p.Size, clr)
	}
}
