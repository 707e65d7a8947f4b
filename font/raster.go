package font

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Bitmap is one rasterized glyph.
type Bitmap struct {
	// Coverage holds the glyph ink, 0-255 per pixel. It may be nil or
	// empty for glyphs without ink such as space.
	Coverage *image.Alpha

	// Left and Top are the bitmap bearings from the pen position in device
	// pixels. Top is measured upward from the baseline.
	Left, Top int

	// Advance is the horizontal pen movement in device pixels.
	Advance float32
}

// Size returns the bitmap dimensions in pixels.
func (b Bitmap) Size() (w, h int) {
	if b.Coverage == nil {
		return 0, 0
	}
	return b.Coverage.Rect.Dx(), b.Coverage.Rect.Dy()
}

// Rasterizer turns characters into coverage bitmaps.
// Face is the implementation backed by a TrueType/OpenType font; tests
// supply synthetic ones.
type Rasterizer interface {
	// Glyph rasterizes r. ok is false if the font has no glyph for r.
	Glyph(r rune) (b Bitmap, ok bool)

	// Ascender returns the distance from the top of a line to the
	// baseline in device pixels.
	Ascender() float32
}

// Face rasterizes glyphs from a parsed TrueType/OpenType font at a fixed
// size.
type Face struct {
	font     *opentype.Font
	face     xfont.Face
	buf      sfnt.Buffer
	ascender float32
}

// NewFace parses font data and prepares a face of size points at
// 72*dpiScale DPI.
func NewFace(data []byte, size, dpiScale float32) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72 * float64(dpiScale),
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: failed to create face: %w", err)
	}

	return &Face{
		font:     f,
		face:     face,
		ascender: fixedToFloat32(face.Metrics().Ascent),
	}, nil
}

// Glyph implements Rasterizer.Glyph.
func (f *Face) Glyph(r rune) (Bitmap, bool) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return Bitmap{}, false
	}

	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Bitmap{}, false
	}

	// The face reuses its mask between calls, so copy it out.
	cov := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	if mask != nil && !dr.Empty() {
		draw.Copy(cov, image.Point{}, mask, image.Rectangle{Min: maskp, Max: maskp.Add(dr.Size())}, draw.Src, nil)
	}

	return Bitmap{
		Coverage: cov,
		Left:     dr.Min.X,
		Top:      -dr.Min.Y,
		Advance:  fixedToFloat32(advance),
	}, true
}

// Ascender implements Rasterizer.Ascender.
func (f *Face) Ascender() float32 {
	return f.ascender
}

// Name returns the font family name, or "" if the font has none.
func (f *Face) Name() string {
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Close releases the face.
func (f *Face) Close() error {
	return f.face.Close()
}

// fixedToFloat32 converts a 26.6 fixed point value to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
