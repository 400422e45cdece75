package termhost

import (
	"image"
	"image/color"
	"math"

	"spaceshooter/game"
)

// Canvas rasterizes the logical screen into terminal cells. Every cell
// holds two vertical pixels drawn with an upper half block, and text is
// layered on top.
type Canvas struct {
	logicalW, logicalH float64

	cols, rows int

	// Pixels per logical unit
	sx, sy float64

	pix  []color.RGBA // cols x rows*2
	text []glyph      // cols x rows
}

type glyph struct {
	r  rune
	fg color.RGBA
}

// NewCanvas creates a canvas for a logical screen of w x h
func NewCanvas(w, h float64) *Canvas {
	return &Canvas{logicalW: w, logicalH: h}
}

// resize adapts the pixel grid to the terminal size and clears it
func (c *Canvas) resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		c.pix = make([]color.RGBA, cols*rows*2)
		c.text = make([]glyph, cols*rows)
	}
	c.sx = float64(c.cols) / c.logicalW
	c.sy = float64(c.rows*2) / c.logicalH

	clear(c.pix)
	clear(c.text)
}

// Size returns the terminal size in cells
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// Pixel returns the color of a half-cell pixel
func (c *Canvas) Pixel(px, py int) color.RGBA {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 {
		return color.RGBA{}
	}
	return c.pix[py*c.cols+px]
}

// Fill implements game.Canvas
func (c *Canvas) Fill(clr color.Color) {
	v := toRGBA(clr)
	for i := range c.pix {
		c.pix[i] = v
	}
}

// FillRect paints every pixel the rectangle touches
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	x0, y0, x1, y1 := c.cover(x, y, w, h)
	src := toRGBA(clr)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, src)
		}
	}
}

// StrokeRect implements game.Canvas. Strokes are at least a pixel wide.
func (c *Canvas) StrokeRect(x, y, w, h, strokeWidth float64, clr color.Color) {
	x0, y0, x1, y1 := c.cover(x, y, w, h)
	bx := max(1, int(math.Round(strokeWidth*c.sx)))
	by := max(1, int(math.Round(strokeWidth*c.sy)))
	src := toRGBA(clr)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if px < x0+bx || px >= x1-bx || py < y0+by || py >= y1-by {
				c.blend(px, py, src)
			}
		}
	}
}

// FillCircle implements game.Canvas. A circle smaller than a pixel still
// lights the pixel under its center.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	src := toRGBA(clr)
	x0, y0, x1, y1 := c.cover(cx-r, cy-r, 2*r, 2*r)
	hit := false
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			lx, ly := c.center(px, py)
			if (lx-cx)*(lx-cx)+(ly-cy)*(ly-cy) <= r*r {
				c.blend(px, py, src)
				hit = true
			}
		}
	}
	if !hit {
		c.blend(int(cx*c.sx), int(cy*c.sy), src)
	}
}

// FillPolygon implements game.Canvas with an even-odd test at pixel centers
func (c *Canvas) FillPolygon(points []game.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	src := toRGBA(clr)
	x0, y0, x1, y1 := c.cover(minX, minY, maxX-minX, maxY-minY)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			lx, ly := c.center(px, py)
			if insidePolygon(points, lx, ly) {
				c.blend(px, py, src)
			}
		}
	}
}

// DrawText implements game.Canvas. Terminal text has one size; y picks
// the row.
func (c *Canvas) DrawText(s string, x, y, _ float64, align game.Align, clr color.Color) {
	runes := []rune(s)
	col := int(x * c.sx)
	if align == game.AlignCenter {
		col -= len(runes) / 2
	}
	row := int(y * c.sy / 2)
	if row < 0 || row >= c.rows {
		return
	}

	fg := toRGBA(clr)
	for i, r := range runes {
		cx := col + i
		if cx < 0 || cx >= c.cols {
			continue
		}
		c.text[row*c.cols+cx] = glyph{r: r, fg: fg}
	}
}

// DrawImage samples img at each covered pixel center
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	x0, y0, x1, y1 := c.cover(x, y, w, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			lx, ly := c.center(px, py)
			ix := b.Min.X + int((lx-x)/w*float64(b.Dx()))
			iy := b.Min.Y + int((ly-y)/h*float64(b.Dy()))
			if ix < b.Min.X || iy < b.Min.Y || ix >= b.Max.X || iy >= b.Max.Y {
				continue
			}
			c.blend(px, py, toRGBA(img.At(ix, iy)))
		}
	}
}

// cover returns the pixel range a logical rectangle overlaps, clipped
func (c *Canvas) cover(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(x * c.sx))
	y0 = int(math.Floor(y * c.sy))
	x1 = int(math.Ceil((x + w) * c.sx))
	y1 = int(math.Ceil((y + h) * c.sy))
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	return max(x0, 0), max(y0, 0), min(x1, c.cols), min(y1, c.rows*2)
}

// center is the logical position of a pixel's center
func (c *Canvas) center(px, py int) (float64, float64) {
	return (float64(px) + 0.5) / c.sx, (float64(py) + 0.5) / c.sy
}

// blend draws src over the pixel
func (c *Canvas) blend(px, py int, src color.RGBA) {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 || src.A == 0 {
		return
	}
	i := py*c.cols + px
	if src.A == 0xff {
		c.pix[i] = src
		return
	}

	// Premultiplied source over
	dst := c.pix[i]
	inv := 255 - uint32(src.A)
	c.pix[i] = color.RGBA{
		R: uint8(uint32(src.R) + uint32(dst.R)*inv/255),
		G: uint8(uint32(src.G) + uint32(dst.G)*inv/255),
		B: uint8(uint32(src.B) + uint32(dst.B)*inv/255),
		A: uint8(uint32(src.A) + uint32(dst.A)*inv/255),
	}
}

func toRGBA(clr color.Color) color.RGBA {
	return color.RGBAModel.Convert(clr).(color.RGBA)
}

func insidePolygon(points []game.Point, x, y float64) bool {
	inside := false
	j := len(points) - 1
	for i := range points {
		pi, pj := points[i], points[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
