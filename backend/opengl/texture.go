package opengl

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/go-theft-auto/quad"
	"github.com/go-theft-auto/quad/font"
)

// Filter selects texture minification and magnification filtering.
type Filter int32

const (
	// FilterNearest keeps pixel art and tile sheets sharp.
	FilterNearest Filter = gl.NEAREST

	// FilterLinear smooths scaled glyphs.
	FilterLinear Filter = gl.LINEAR
)

// Texture is a 2D texture owned by the caller.
type Texture struct {
	ID            uint32
	Width, Height int
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// UploadAtlas creates a single-channel texture from the atlas coverage
// with linear filtering. Row 0 of the atlas is the top of the texture, so
// the atlas UV rectangles are used unchanged.
func UploadAtlas(a *font.Atlas) (*Texture, error) {
	t, err := newTexture(a.Width(), a.Height(), gl.R8, gl.RED, a.Pixels(), FilterLinear)
	if err != nil {
		return nil, fmt.Errorf("opengl: upload atlas: %w", err)
	}
	quad.Logger().Info("atlas texture uploaded",
		"id", t.ID,
		"width", t.Width,
		"height", t.Height)
	return t, nil
}

// LoadTexture decodes a PNG, BMP or WebP image and uploads it as an RGBA
// texture. Read and decode failures are returned as *quad.ResourceError,
// so errors.Is(err, quad.ErrResourceLoad) holds.
func LoadTexture(path string, filter Filter) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &quad.ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := decodeImage(f)
	if err != nil {
		return nil, &quad.ResourceError{Path: path, Err: err}
	}

	t, err := NewTexture(img, filter)
	if err != nil {
		return nil, fmt.Errorf("opengl: upload %s: %w", path, err)
	}
	quad.Logger().Info("texture loaded",
		"path", path,
		"format", format,
		"id", t.ID,
		"width", t.Width,
		"height", t.Height)
	return t, nil
}

// NewTexture uploads img as an RGBA texture.
func NewTexture(img *image.NRGBA, filter Filter) (*Texture, error) {
	b := img.Bounds()
	return newTexture(b.Dx(), b.Dy(), gl.RGBA8, gl.RGBA, img.Pix, filter)
}

// decodeImage decodes any registered format into tightly packed NRGBA
// pixels, top row first.
func decodeImage(r io.Reader) (*image.NRGBA, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst, format, nil
}

func newTexture(width, height int, internalFormat int32, format uint32, pix []byte, filter Filter) (*Texture, error) {
	if width <= 0 || height <= 0 || len(pix) == 0 {
		return nil, fmt.Errorf("empty %dx%d image", width, height)
	}

	t := &Texture{Width: width, Height: height}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// Rows are tightly packed; single-channel widths need not be multiples of 4.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Delete()
		return nil, fmt.Errorf("glTexImage2D failed with error 0x%x", code)
	}
	return t, nil
}
