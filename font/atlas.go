package font

import (
	"image"

	"github.com/go-theft-auto/quad"
)

// GlyphMetric describes where a glyph lives in the atlas and how to place
// it relative to the pen.
type GlyphMetric struct {
	// AdvanceX is the pen movement after the glyph, in logical units
	// (device pixels divided by the DPI scale).
	AdvanceX float32

	// OffsetX and OffsetY position the bitmap relative to the pen, in
	// logical units. OffsetY is measured upward from the baseline.
	OffsetX, OffsetY float32

	// Width and Height are the bitmap size in atlas pixels.
	Width, Height int

	// X and Y are the top-left corner of the bitmap in the atlas.
	X, Y int

	// UV rectangle in [0, 1], inset by half a texel so sampling stays
	// inside the glyph's own texels.
	U0, V0, U1, V1 float32
}

// Empty reports whether the glyph has no ink in the atlas.
func (g GlyphMetric) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// GlyphQuad is the screen and texture rectangle for drawing one glyph.
type GlyphQuad struct {
	// Screen coordinates (top-left and bottom-right)
	X0, Y0 float32
	X1, Y1 float32

	// Texture coordinates (top-left and bottom-right)
	U0, V0 float32
	U1, V1 float32
}

// Screen returns the screen corners in quad winding order.
func (q GlyphQuad) Screen() [4]quad.Vec2 {
	return quad.Rect{X: q.X0, Y: q.Y0, W: q.X1 - q.X0, H: q.Y1 - q.Y0}.Corners()
}

// Tex returns the texture corners in quad winding order.
func (q GlyphQuad) Tex() [4]quad.Vec2 {
	return [4]quad.Vec2{
		{X: q.U0, Y: q.V0},
		{X: q.U0, Y: q.V1},
		{X: q.U1, Y: q.V1},
		{X: q.U1, Y: q.V0},
	}
}

// Atlas is a single-channel coverage texture holding a range of glyphs,
// plus the metrics needed to lay them out. It is immutable once built and
// safe to share between goroutines.
type Atlas struct {
	img      *image.Alpha
	ascender float32
	dpiScale float32
	first    rune
	last     rune
	metrics  map[rune]GlyphMetric
}

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int { return a.img.Rect.Dx() }

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int { return a.img.Rect.Dy() }

// Pixels returns the coverage buffer, Width()*Height() bytes, top row
// first. It is what gets uploaded as the texture and must not be modified.
func (a *Atlas) Pixels() []byte { return a.img.Pix }

// Image returns the coverage buffer as an image sharing the atlas memory.
// It must not be modified.
func (a *Atlas) Image() *image.Alpha { return a.img }

// Ascender returns the distance from line top to baseline in logical
// units.
func (a *Atlas) Ascender() float32 { return a.ascender }

// LineHeight returns the distance between consecutive baselines. Lines
// are single-spaced at the ascender height.
func (a *Atlas) LineHeight() float32 { return a.ascender }

// DPIScale returns the device pixel ratio the atlas was rasterized at.
func (a *Atlas) DPIScale() float32 { return a.dpiScale }

// Range returns the packed character range (inclusive).
func (a *Atlas) Range() (first, last rune) { return a.first, a.last }

// Len returns the number of characters with metrics.
func (a *Atlas) Len() int { return len(a.metrics) }

// Glyph returns the metric for r without any fallback.
func (a *Atlas) Glyph(r rune) (GlyphMetric, bool) {
	g, ok := a.metrics[r]
	return g, ok
}

// HasGlyph returns true if the atlas has a metric for r.
func (a *Atlas) HasGlyph(r rune) bool {
	_, ok := a.metrics[r]
	return ok
}

// lookup resolves r through the fallback table before giving up.
func (a *Atlas) lookup(r rune) (GlyphMetric, bool) {
	if g, ok := a.metrics[r]; ok {
		return g, true
	}
	if fr := fallbackRune(r); fr != r {
		if g, ok := a.metrics[fr]; ok {
			return g, true
		}
	}
	g, ok := a.metrics['?']
	return g, ok
}

// GlyphQuad returns the quad for drawing r with the pen at (penX, penY).
// penY is the top of the line; the ascender moves the glyph onto the
// baseline so glyphs on one line align. The texture rectangle is the
// glyph's UV rectangle unchanged.
func (a *Atlas) GlyphQuad(r rune, penX, penY float32) (GlyphQuad, bool) {
	g, ok := a.lookup(r)
	if !ok {
		return GlyphQuad{}, false
	}

	x0 := penX + g.OffsetX
	y0 := penY + a.ascender - g.OffsetY
	return GlyphQuad{
		X0: x0,
		Y0: y0,
		X1: x0 + float32(g.Width)/a.dpiScale,
		Y1: y0 + float32(g.Height)/a.dpiScale,
		U0: g.U0,
		V0: g.V0,
		U1: g.U1,
		V1: g.V1,
	}, true
}

// AdvanceX returns the pen movement for r in logical units, or 0 if r
// cannot be resolved.
func (a *Atlas) AdvanceX(r rune) float32 {
	g, ok := a.lookup(r)
	if !ok {
		return 0
	}
	return g.AdvanceX
}

// MeasureText returns the size of s when laid out by DrawString.
// Newlines start a new line; the height counts every line.
func (a *Atlas) MeasureText(s string) quad.Vec2 {
	if s == "" {
		return quad.Vec2{}
	}

	lines := 1
	var x, maxX float32
	for _, r := range s {
		if r == '\n' {
			x = 0
			lines++
			continue
		}
		x += a.AdvanceX(r)
		if x > maxX {
			maxX = x
		}
	}

	return quad.Vec2{X: maxX, Y: float32(lines) * a.LineHeight()}
}
