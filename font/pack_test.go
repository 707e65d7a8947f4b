package font_test

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/quad/font"
)

func TestBuildShelfPlacement(t *testing.T) {
	r := &boxRasterizer{w: 10, h: 8, top: 8, advance: 11, ascender: 9}
	a, err := font.Build(r, boxConfig(40, 100, 'A', 'D'))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		r    rune
		x, y int
	}{
		{'A', 2, 2},
		{'B', 14, 2},
		{'C', 26, 2},
		{'D', 2, 12}, // wrapped below the 8px row plus padding
	}
	for _, tt := range tests {
		g, ok := a.Glyph(tt.r)
		if !ok {
			t.Fatalf("no metric for %q", tt.r)
		}
		if g.X != tt.x || g.Y != tt.y {
			t.Errorf("%q placed at (%d,%d), want (%d,%d)", tt.r, g.X, g.Y, tt.x, tt.y)
		}
		if g.Width != 10 || g.Height != 8 {
			t.Errorf("%q size %dx%d, want 10x8", tt.r, g.Width, g.Height)
		}
	}
}

func TestBuildRowHeightUsesTallestGlyph(t *testing.T) {
	r := &boxRasterizer{
		w: 10, h: 8, advance: 11,
		sizes: map[rune][2]int{'B': {10, 20}},
	}
	a, err := font.Build(r, boxConfig(40, 100, 'A', 'D'))
	if err != nil {
		t.Fatal(err)
	}

	g, _ := a.Glyph('D')
	if g.Y != 2+20+2 {
		t.Errorf("second row at y=%d, want %d", g.Y, 24)
	}
}

func TestBuildSolidOverwrite(t *testing.T) {
	r := &boxRasterizer{w: 4, h: 3, advance: 5, value: 200}
	a, err := font.Build(r, boxConfig(32, 32, 'A', 'B'))
	if err != nil {
		t.Fatal(err)
	}

	g, _ := a.Glyph('A')
	px := a.Pixels()
	for y := g.Y; y < g.Y+g.Height; y++ {
		for x := g.X; x < g.X+g.Width; x++ {
			if v := px[y*a.Width()+x]; v != 200 {
				t.Fatalf("pixel (%d,%d) = %d, want 200", x, y, v)
			}
		}
	}
	// Padding between and around glyphs stays empty.
	if px[0] != 0 || px[g.Y*a.Width()+g.X+g.Width] != 0 {
		t.Error("padding pixels were written")
	}
	if len(px) != 32*32 {
		t.Errorf("pixel buffer has %d bytes, want %d", len(px), 32*32)
	}
}

func TestBuildOverflowHeight(t *testing.T) {
	r := &boxRasterizer{w: 20, h: 20, advance: 21}
	a, err := font.Build(r, boxConfig(30, 30, 'A', 'B'))
	if !errors.Is(err, font.ErrAtlasOverflow) {
		t.Fatalf("expected ErrAtlasOverflow, got %v", err)
	}
	if a != nil {
		t.Error("expected no atlas on overflow")
	}
}

func TestBuildOverflowWidth(t *testing.T) {
	r := &boxRasterizer{w: 17, h: 4, advance: 18}
	_, err := font.Build(r, boxConfig(20, 200, 'A', 'A'))
	if !errors.Is(err, font.ErrAtlasOverflow) {
		t.Fatalf("expected ErrAtlasOverflow for a glyph wider than the atlas, got %v", err)
	}
}

func TestBuildEmptyAndMissingGlyphs(t *testing.T) {
	r := &boxRasterizer{w: 4, h: 4, advance: 6, missing: map[rune]bool{'!': true}}
	cfg := boxConfig(64, 64, ' ', '#')
	cfg.DPIScale = 2
	a, err := font.Build(r, cfg)
	if err != nil {
		t.Fatal(err)
	}

	space, ok := a.Glyph(' ')
	if !ok {
		t.Fatal("space should have a metric")
	}
	if !space.Empty() || space.AdvanceX != 3 {
		t.Errorf("space metric = %+v, want empty with advance 3", space)
	}
	if space.U0 != 0 || space.U1 != 0 {
		t.Errorf("space should have no UV rect, got %+v", space)
	}
	if a.HasGlyph('!') {
		t.Error("missing glyph should have no metric")
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}

	// The first inked glyph starts at the padding origin: space took no room.
	g, _ := a.Glyph('"')
	if g.X != 2 || g.Y != 2 {
		t.Errorf("first inked glyph at (%d,%d), want (2,2)", g.X, g.Y)
	}
}

func TestBuildInvalidConfig(t *testing.T) {
	r := &boxRasterizer{w: 4, h: 4}
	cfg := boxConfig(0, 64, 'A', 'B')

	_, err := font.Build(r, cfg)
	var cfgErr *font.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Field != "Width/Height" {
		t.Errorf("Field = %q", cfgErr.Field)
	}

	cfg = boxConfig(64, 64, 'B', 'A')
	if _, err := font.Build(r, cfg); !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError for reversed range, got %v", err)
	}

	// A range ending past the last code point would wrap the rune counter.
	cfg = boxConfig(64, 64, math.MaxInt32-1, math.MaxInt32)
	if _, err := font.Build(r, cfg); !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError for range past MaxRune, got %v", err)
	}
}

func TestGoRegularDefaultFits(t *testing.T) {
	a := goRegularAtlas(t)

	if a.Len() != int('~'-' ')+1 {
		t.Errorf("Len() = %d, want %d", a.Len(), '~'-' '+1)
	}
	if a.Width() != 512 || a.Height() != 512 {
		t.Errorf("atlas is %dx%d", a.Width(), a.Height())
	}
	if a.Ascender() <= 0 {
		t.Errorf("Ascender() = %v", a.Ascender())
	}

	w, h := float64(a.Width()), float64(a.Height())
	for r := ' '; r <= '~'; r++ {
		g, ok := a.Glyph(r)
		if !ok {
			t.Fatalf("missing metric for %q", r)
		}
		if g.Empty() {
			continue
		}
		if !(g.U0 < g.U1) || !(g.V0 < g.V1) {
			t.Errorf("%q: degenerate UV rect %v,%v,%v,%v", r, g.U0, g.V0, g.U1, g.V1)
		}
		x0 := math.Floor(float64(g.U0) * w)
		y0 := math.Floor(float64(g.V0) * h)
		x1 := math.Ceil(float64(g.U1) * w)
		y1 := math.Ceil(float64(g.V1) * h)
		if x0 < 0 || y0 < 0 || x1 > w || y1 > h {
			t.Errorf("%q: UV rect maps to [%v,%v)x[%v,%v) outside atlas", r, x0, x1, y0, y1)
		}
		if x0 != float64(g.X) || x1 != float64(g.X+g.Width) {
			t.Errorf("%q: UV rect does not cover placed pixels x=%d w=%d", r, g.X, g.Width)
		}
		if g.AdvanceX <= 0 {
			t.Errorf("%q: AdvanceX = %v", r, g.AdvanceX)
		}
	}
}

func TestGoRegularUndersizedAtlasOverflows(t *testing.T) {
	cfg := font.DefaultConfig()
	cfg.Width, cfg.Height = 64, 64

	_, err := font.NewAtlas(goregular.TTF, cfg)
	if !errors.Is(err, font.ErrAtlasOverflow) {
		t.Fatalf("expected ErrAtlasOverflow, got %v", err)
	}
}

func TestNewAtlasBadFontData(t *testing.T) {
	_, err := font.NewAtlas([]byte("not a font"), font.DefaultConfig())
	if err == nil {
		t.Fatal("expected parse error")
	}
}
