package font

import (
	"fmt"
	"image"
	"io"
	"sort"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// bakedAtlasVersion is bumped whenever bakedAtlas changes shape.
const bakedAtlasVersion = 1

// bakedAtlas is the on-disk form of an Atlas: msgpack, compressed with
// zstd.
type bakedAtlas struct {
	Version  int          `msgpack:"v"`
	Width    int          `msgpack:"w"`
	Height   int          `msgpack:"h"`
	Ascender float32      `msgpack:"asc"`
	DPIScale float32      `msgpack:"dpi"`
	First    rune         `msgpack:"first"`
	Last     rune         `msgpack:"last"`
	Glyphs   []bakedGlyph `msgpack:"glyphs"`
	Pixels   []byte       `msgpack:"px"`
}

type bakedGlyph struct {
	Rune     rune    `msgpack:"r"`
	AdvanceX float32 `msgpack:"adv"`
	OffsetX  float32 `msgpack:"ox"`
	OffsetY  float32 `msgpack:"oy"`
	Width    int     `msgpack:"w"`
	Height   int     `msgpack:"h"`
	X        int     `msgpack:"x"`
	Y        int     `msgpack:"y"`
	U0       float32 `msgpack:"u0"`
	V0       float32 `msgpack:"v0"`
	U1       float32 `msgpack:"u1"`
	V1       float32 `msgpack:"v1"`
}

// Encode writes a baked copy of the atlas to w. DecodeAtlas restores it
// without needing the font or a rasterizer.
func (a *Atlas) Encode(w io.Writer) error {
	b := bakedAtlas{
		Version:  bakedAtlasVersion,
		Width:    a.Width(),
		Height:   a.Height(),
		Ascender: a.ascender,
		DPIScale: a.dpiScale,
		First:    a.first,
		Last:     a.last,
		Glyphs:   make([]bakedGlyph, 0, len(a.metrics)),
		Pixels:   a.img.Pix,
	}
	for r, g := range a.metrics {
		b.Glyphs = append(b.Glyphs, bakedGlyph{
			Rune: r, AdvanceX: g.AdvanceX, OffsetX: g.OffsetX, OffsetY: g.OffsetY,
			Width: g.Width, Height: g.Height, X: g.X, Y: g.Y,
			U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
		})
	}
	// Deterministic output for identical atlases.
	sort.Slice(b.Glyphs, func(i, j int) bool { return b.Glyphs[i].Rune < b.Glyphs[j].Rune })

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("font: zstd writer: %w", err)
	}
	if err := msgpack.NewEncoder(zw).Encode(&b); err != nil {
		zw.Close()
		return fmt.Errorf("font: msgpack encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("font: zstd close: %w", err)
	}
	return nil
}

// DecodeAtlas reads an atlas written by Atlas.Encode.
func DecodeAtlas(r io.Reader) (*Atlas, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCache, err)
	}
	defer zr.Close()

	var b bakedAtlas
	if err := msgpack.NewDecoder(zr).Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCache, err)
	}

	if b.Version != bakedAtlasVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadCache, b.Version, bakedAtlasVersion)
	}
	if b.Width <= 0 || b.Height <= 0 || len(b.Pixels) != b.Width*b.Height || b.DPIScale <= 0 {
		return nil, fmt.Errorf("%w: %dx%d atlas with %d pixels", ErrBadCache, b.Width, b.Height, len(b.Pixels))
	}

	a := &Atlas{
		img: &image.Alpha{
			Pix:    b.Pixels,
			Stride: b.Width,
			Rect:   image.Rect(0, 0, b.Width, b.Height),
		},
		ascender: b.Ascender,
		dpiScale: b.DPIScale,
		first:    b.First,
		last:     b.Last,
		metrics:  make(map[rune]GlyphMetric, len(b.Glyphs)),
	}
	for _, g := range b.Glyphs {
		if g.X < 0 || g.Y < 0 || g.X+g.Width > b.Width || g.Y+g.Height > b.Height {
			return nil, fmt.Errorf("%w: glyph %q outside atlas", ErrBadCache, g.Rune)
		}
		a.metrics[g.Rune] = GlyphMetric{
			AdvanceX: g.AdvanceX, OffsetX: g.OffsetX, OffsetY: g.OffsetY,
			Width: g.Width, Height: g.Height, X: g.X, Y: g.Y,
			U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
		}
	}
	return a, nil
}
