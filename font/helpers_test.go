package font_test

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/quad/font"
)

// boxRasterizer produces solid w x h boxes for every rune except space,
// which has no ink. Every glyph advances the pen by advance pixels and
// sits top pixels above the baseline.
type boxRasterizer struct {
	w, h     int
	top      int
	advance  float32
	ascender float32
	value    uint8
	missing  map[rune]bool
	sizes    map[rune][2]int
}

func (b *boxRasterizer) Glyph(r rune) (font.Bitmap, bool) {
	if b.missing[r] {
		return font.Bitmap{}, false
	}
	if r == ' ' {
		return font.Bitmap{Advance: b.advance}, true
	}

	w, h := b.w, b.h
	if sz, ok := b.sizes[r]; ok {
		w, h = sz[0], sz[1]
	}
	cov := image.NewAlpha(image.Rect(0, 0, w, h))
	v := b.value
	if v == 0 {
		v = 255
	}
	for i := range cov.Pix {
		cov.Pix[i] = v
	}
	return font.Bitmap{Coverage: cov, Left: 1, Top: b.top, Advance: b.advance}, true
}

func (b *boxRasterizer) Ascender() float32 { return b.ascender }

// boxConfig is a 1x DPI config for the synthetic rasterizer.
func boxConfig(w, h int, first, last rune) font.Config {
	return font.Config{
		Size:     16,
		DPIScale: 1,
		Width:    w,
		Height:   h,
		First:    first,
		Last:     last,
		Padding:  2,
	}
}

// goRegularAtlas builds the default configuration from the Go Regular font.
func goRegularAtlas(t *testing.T) *font.Atlas {
	t.Helper()
	a, err := font.NewAtlas(goregular.TTF, font.DefaultConfig())
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return a
}
