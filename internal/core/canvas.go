package core

import "math"

// Canvas is a pixel-space drawing surface. Games draw through it so the same
// scene can be shown in a terminal or in a desktop window.
type Canvas interface {
	// Clear erases the whole surface.
	Clear()
	// FillRect fills the rectangle with top-left (x, y) and size w x h.
	FillRect(x, y, w, h float64, c Color)
	// FillCircle fills the circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c Color)
	// Text draws text with its baseline at (x, y) and a font size in pixels.
	Text(x, y float64, size int, text string, c Color)
}

// Glyphs used when rasterizing shapes into terminal cells.
const (
	GlyphSolid = '█'
	GlyphDot   = '•'
)

// ScreenCanvas rasterizes pixel-space drawing onto a character Screen.
// Every column covers PxPerCol pixels and every row PxPerRow pixels.
type ScreenCanvas struct {
	screen   *Screen
	pxPerCol float64
	pxPerRow float64
}

// NewScreenCanvas wraps a screen. Non-positive scales fall back to 1.
func NewScreenCanvas(s *Screen, pxPerCol, pxPerRow float64) *ScreenCanvas {
	if pxPerCol <= 0 {
		pxPerCol = 1
	}
	if pxPerRow <= 0 {
		pxPerRow = 1
	}
	return &ScreenCanvas{screen: s, pxPerCol: pxPerCol, pxPerRow: pxPerRow}
}

// Clear erases the underlying screen.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// FillRect fills every cell the rectangle touches.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, col Color) {
	x0 := int(math.Floor(x / c.pxPerCol))
	y0 := int(math.Floor(y / c.pxPerRow))
	x1 := int(math.Ceil((x + w) / c.pxPerCol))
	y1 := int(math.Ceil((y + h) / c.pxPerRow))
	c.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), GlyphSolid, col)
}

// FillCircle fills every cell whose center lies inside the circle.
// A circle smaller than a cell still marks the cell holding its center.
func (c *ScreenCanvas) FillCircle(cx, cy, r float64, col Color) {
	x0 := int(math.Floor((cx - r) / c.pxPerCol))
	y0 := int(math.Floor((cy - r) / c.pxPerRow))
	x1 := int(math.Ceil((cx + r) / c.pxPerCol))
	y1 := int(math.Ceil((cy + r) / c.pxPerRow))

	filled := false
	for row := y0; row < y1; row++ {
		for col2 := x0; col2 < x1; col2++ {
			px := (float64(col2) + 0.5) * c.pxPerCol
			py := (float64(row) + 0.5) * c.pxPerRow
			if math.Hypot(px-cx, py-cy) <= r {
				c.screen.SetCell(col2, row, GlyphSolid, col)
				filled = true
			}
		}
	}

	if !filled {
		c.screen.SetCell(int(math.Floor(cx/c.pxPerCol)), int(math.Floor(cy/c.pxPerRow)), GlyphDot, col)
	}
}

// Text writes text starting at the cell containing (x, y). Font size is
// ignored; terminals have a single glyph size.
func (c *ScreenCanvas) Text(x, y float64, _ int, text string, col Color) {
	c.screen.DrawText(int(math.Floor(x/c.pxPerCol)), int(math.Floor(y/c.pxPerRow)), text, col)
}
