package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Style names accepted by RenderConfig.Style
const (
	StyleVector = "vector"
	StyleSprite = "sprite"
)

//go:embed assets/player.svg
var playerSVGData []byte

//go:embed assets/enemy.svg
var enemySVGData []byte

// Style draws the ships. Bullets, explosions and UI look the same in every
// style.
type Style interface {
	DrawPlayer(c Canvas, p *Player)
	DrawEnemy(c Canvas, e *Enemy)
}

// Sprites holds the decoded ship images
type Sprites struct {
	Player image.Image
	Enemy  image.Image
}

// LoadSprites rasterizes the embedded SVG ships at their collision size
func LoadSprites() (Sprites, error) {
	player, err := svgToImage(playerSVGData, playerWidth, playerHeight)
	if err != nil {
		return Sprites{}, fmt.Errorf("player sprite: %w", err)
	}
	enemy, err := svgToImage(enemySVGData, enemyWidth, enemyHeight)
	if err != nil {
		return Sprites{}, fmt.Errorf("enemy sprite: %w", err)
	}
	return Sprites{Player: player, Enemy: enemy}, nil
}

// NewStyle resolves a style name. Sprite loading failures fall back to
// vector drawing and are returned so the caller can log them.
func NewStyle(name string) (Style, error) {
	if name != StyleSprite {
		return VectorStyle{}, nil
	}
	sprites, err := LoadSprites()
	if err != nil {
		return VectorStyle{}, err
	}
	return SpriteStyle{Sprites: sprites}, nil
}

// svgToImage converts SVG data to an RGBA image
func svgToImage(svgData []byte, width, height float64) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	w, h := int(width), int(height)
	icon.SetTarget(0, 0, width, height)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// SpriteStyle blits pre-decoded images
type SpriteStyle struct {
	Sprites Sprites
}

// DrawPlayer implements Style
func (s SpriteStyle) DrawPlayer(c Canvas, p *Player) {
	c.DrawImage(s.Sprites.Player, p.X, p.Y, p.Width, p.Height)
}

// DrawEnemy implements Style
func (s SpriteStyle) DrawEnemy(c Canvas, e *Enemy) {
	c.DrawImage(s.Sprites.Enemy, e.X, e.Y, e.Width, e.Height)
}

// VectorStyle draws the ships from shapes
type VectorStyle struct{}

// DrawPlayer draws an arrow hull with a cockpit and an engine flame
func (VectorStyle) DrawPlayer(c Canvas, p *Player) {
	x, y, w, h := p.X, p.Y, p.Width, p.Height

	c.FillPolygon([]Point{
		{x + w*0.40, y + h*0.85},
		{x + w*0.50, y + h},
		{x + w*0.60, y + h*0.85},
	}, colorPlayerFlame)

	c.FillPolygon([]Point{
		{x + w*0.5, y},
		{x + w, y + h*0.80},
		{x + w*0.5, y + h*0.65},
		{x, y + h*0.80},
	}, colorPlayerHull)

	c.FillCircle(x+w*0.5, y+h*0.38, w*0.09, colorPlayerCockpit)
}

// DrawEnemy draws a downward-pointing hull with a single eye
func (VectorStyle) DrawEnemy(c Canvas, e *Enemy) {
	x, y, w, h := e.X, e.Y, e.Width, e.Height

	c.FillPolygon([]Point{
		{x, y + h*0.15},
		{x + w*0.5, y},
		{x + w, y + h*0.15},
		{x + w*0.75, y + h*0.75},
		{x + w*0.5, y + h},
		{x + w*0.25, y + h*0.75},
	}, colorEnemyHull)

	c.FillCircle(x+w*0.5, y+h*0.4, w*0.12, colorEnemyEye)
}
