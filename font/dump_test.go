package font_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/go-theft-auto/quad/font"
)

func TestWritePPM(t *testing.T) {
	r := &boxRasterizer{w: 4, h: 3, advance: 5, value: 255}
	a, err := font.Build(r, boxConfig(16, 8, 'A', 'A'))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := font.WritePPM(&buf, a); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	header := "P6\n16 8\n255\n"
	if !bytes.HasPrefix(buf.Bytes(), []byte(header)) {
		t.Fatalf("header = %q, want prefix %q", buf.Bytes()[:len(header)], header)
	}
	px := buf.Bytes()[len(header):]
	if len(px) != 16*8*3 {
		t.Fatalf("pixel data is %d bytes, want %d", len(px), 16*8*3)
	}

	// Background is white, ink is black.
	if px[0] != 255 || px[1] != 255 || px[2] != 255 {
		t.Errorf("background pixel = %v", px[:3])
	}
	g, _ := a.Glyph('A')
	off := (g.Y*16 + g.X) * 3
	if px[off] != 0 || px[off+1] != 0 || px[off+2] != 0 {
		t.Errorf("ink pixel = %v", px[off:off+3])
	}
}

func TestWritePNG(t *testing.T) {
	r := &boxRasterizer{w: 4, h: 3, advance: 5, value: 100}
	a, err := font.Build(r, boxConfig(16, 8, 'A', 'A'))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := font.WritePNG(&buf, a); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 16 || got.Y != 8 {
		t.Fatalf("image size = %v", got)
	}
	g, _ := a.Glyph('A')
	cr, _, _, _ := img.At(g.X, g.Y).RGBA()
	if got, want := cr>>8, uint32(255-100); got != want {
		t.Errorf("ink gray = %d, want %d", got, want)
	}
}
