package ebitenhost

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"spaceshooter/game"
)

// Canvas draws onto the ebiten screen image handed to Draw
type Canvas struct {
	target *ebiten.Image

	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace

	// Decoded sprites uploaded to the GPU once
	images map[image.Image]*ebiten.Image

	// Source texture for polygon fills
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas loads the UI font
func NewCanvas() (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Canvas{
		font:   src,
		faces:  make(map[float64]*text.GoTextFace),
		images: make(map[image.Image]*ebiten.Image),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// SetTarget points the canvas at the frame's screen
func (c *Canvas) SetTarget(screen *ebiten.Image) {
	c.target = screen
}

// Fill implements game.Canvas
func (c *Canvas) Fill(clr color.Color) {
	c.target.Fill(clr)
}

// FillRect implements game.Canvas
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), clr, true)
}

// StrokeRect implements game.Canvas
func (c *Canvas) StrokeRect(x, y, w, h, strokeWidth float64, clr color.Color) {
	vector.StrokeRect(c.target, float32(x), float32(y), float32(w), float32(h), float32(strokeWidth), clr, true)
}

// FillCircle implements game.Canvas
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(r), clr, true)
}

// FillPolygon implements game.Canvas
func (c *Canvas) FillPolygon(points []game.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	c.target.DrawTriangles(c.vertices, c.indices, c.white, op)
}

// DrawText implements game.Canvas
func (c *Canvas) DrawText(s string, x, y, size float64, align game.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.SecondaryAlign = text.AlignCenter
	if align == game.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(c.target, s, c.face(size), op)
}

// DrawImage implements game.Canvas
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	src, ok := c.images[img]
	if !ok {
		src = ebiten.NewImageFromImage(img)
		c.images[img] = src
	}

	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	c.target.DrawImage(src, op)
}

func (c *Canvas) face(size float64) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.font, Size: size}
		c.faces[size] = f
	}
	return f
}
