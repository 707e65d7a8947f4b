// Package tiles draws grid levels from a fixed-layout glyph sheet into a
// quad.Batch.
package tiles

import "github.com/go-theft-auto/quad"

// Sheet describes a texture split into equally sized cells, addressed by
// column and row from the top-left.
type Sheet struct {
	Cols, Rows int
}

// DefaultSheet is the 16x16 code page 437 layout.
var DefaultSheet = Sheet{Cols: 16, Rows: 16}

// UV returns the texture rectangle of the cell at (col, row).
// Row 0 is the top row of the image.
func (s Sheet) UV(col, row int) quad.Rect {
	w := 1 / float32(s.Cols)
	h := 1 / float32(s.Rows)
	return quad.Rect{
		X: float32(col) * w,
		Y: float32(row) * h,
		W: w,
		H: h,
	}
}

// Glyph is one sheet cell drawn with a foreground colour where the sheet
// has ink and a background colour elsewhere.
type Glyph struct {
	Col, Row int
	Fg, Bg   quad.Color
}

// Palette used by the built-in glyphs.
var (
	colorGround   = quad.ColorGray
	colorWall     = quad.ColorLightGray
	colorFloor    = quad.ColorDarkGray
	colorPlayer   = quad.Color{R: 0.85, G: 0.85, B: 0.85, A: 1}
	colorEntityBg = quad.ColorDarkGray.WithAlpha(0.5)
)

// ErrorGlyph is drawn for tiles without a glyph of their own.
var ErrorGlyph = Glyph{Col: 0, Row: 0, Fg: quad.ColorRed, Bg: quad.ColorRed}

// PlayerGlyph is the '@' drawn over the level at the player position.
var PlayerGlyph = Glyph{Col: 0, Row: 4, Fg: colorPlayer, Bg: colorEntityBg}
