package font

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"

	"github.com/go-theft-auto/quad"
)

// Build packs the characters cfg.First..cfg.Last from r into a new atlas.
//
// Glyphs are placed left to right in rows (shelves). When a glyph would
// cross the right edge the pen moves to the start of a new row below the
// tallest glyph of the current one. If a glyph does not fit below the last
// row, or is wider than the atlas, Build returns an error wrapping
// ErrAtlasOverflow and no atlas; pixels are never written out of bounds.
//
// Characters r cannot produce get no metric. Empty glyphs such as space
// take no atlas space but keep their advance.
func Build(r Rasterizer, cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Atlas{
		img:      image.NewAlpha(image.Rect(0, 0, cfg.Width, cfg.Height)),
		ascender: r.Ascender() / cfg.DPIScale,
		dpiScale: cfg.DPIScale,
		first:    cfg.First,
		last:     cfg.Last,
		metrics:  make(map[rune]GlyphMetric, int(cfg.Last-cfg.First)+1),
	}

	pad := cfg.Padding
	penX, penY := pad, pad
	rowMax := 0

	for ch := cfg.First; ch <= cfg.Last; ch++ {
		bm, ok := r.Glyph(ch)
		if !ok {
			continue
		}

		w, h := bm.Size()
		g := GlyphMetric{
			AdvanceX: bm.Advance / cfg.DPIScale,
			OffsetX:  float32(bm.Left) / cfg.DPIScale,
			OffsetY:  float32(bm.Top) / cfg.DPIScale,
			Width:    w,
			Height:   h,
		}
		if g.Empty() {
			g.Width, g.Height = 0, 0
			a.metrics[ch] = g
			continue
		}

		if w+2*pad > cfg.Width {
			return nil, fmt.Errorf("%w: glyph %q is %d px wide, atlas is %d px",
				ErrAtlasOverflow, ch, w, cfg.Width)
		}
		if penX+w+pad > cfg.Width {
			penX = pad
			penY += rowMax + pad
			rowMax = 0
		}
		if penY+h+pad > cfg.Height {
			return nil, fmt.Errorf("%w: glyph %q (%dx%d) at row y=%d does not fit %dx%d atlas",
				ErrAtlasOverflow, ch, w, h, penY, cfg.Width, cfg.Height)
		}

		// Solid overwrite, no blending.
		draw.Copy(a.img, image.Pt(penX, penY), bm.Coverage, bm.Coverage.Rect, draw.Src, nil)

		g.X, g.Y = penX, penY
		g.U0, g.V0, g.U1, g.V1 = uvRect(penX, penY, w, h, cfg.Width, cfg.Height)
		a.metrics[ch] = g

		penX += w + pad
		if h > rowMax {
			rowMax = h
		}
	}

	quad.Logger().Debug("font atlas packed",
		"glyphs", len(a.metrics),
		"width", cfg.Width,
		"height", cfg.Height,
		"usedHeight", penY+rowMax+pad)
	return a, nil
}

// uvRect normalizes a placed pixel rectangle against the atlas size,
// insetting each edge by half a texel so linear filtering samples texel
// centres and never reaches a neighbouring glyph. One-pixel extents use a
// quarter texel so the rectangle keeps a positive size.
func uvRect(x, y, w, h, atlasW, atlasH int) (u0, v0, u1, v1 float32) {
	ix, iy := texelInset(w), texelInset(h)
	aw, ah := float32(atlasW), float32(atlasH)
	u0 = (float32(x) + ix) / aw
	v0 = (float32(y) + iy) / ah
	u1 = (float32(x+w) - ix) / aw
	v1 = (float32(y+h) - iy) / ah
	return u0, v0, u1, v1
}

func texelInset(extent int) float32 {
	if extent > 1 {
		return 0.5
	}
	return 0.25
}

// NewAtlas rasterizes font data and packs it with cfg.
func NewAtlas(data []byte, cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	face, err := NewFace(data, cfg.Size, cfg.DPIScale)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	return Build(face, cfg)
}

// LoadAtlas reads a font file and packs it with cfg. I/O and parse
// failures are reported as *quad.ResourceError.
func LoadAtlas(path string, cfg Config) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &quad.ResourceError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	face, err := NewFace(data, cfg.Size, cfg.DPIScale)
	if err != nil {
		return nil, &quad.ResourceError{Path: path, Err: err}
	}
	defer face.Close()

	a, err := Build(face, cfg)
	if err != nil {
		return nil, fmt.Errorf("font: build atlas for %s: %w", path, err)
	}

	quad.Logger().Info("font atlas loaded",
		"path", path,
		"family", face.Name(),
		"size", cfg.Size,
		"dpiScale", cfg.DPIScale)
	return a, nil
}
