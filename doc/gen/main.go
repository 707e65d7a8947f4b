// Command gen renders sample scenes through the batch renderer, captures
// framebuffer pixels and saves JPEG screenshots to doc/imgs/. It also
// writes the default glyph atlas as PNG and PPM and bakes it to
// atlas.bin.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/quad"
	"github.com/go-theft-auto/quad/backend/opengl"
	"github.com/go-theft-auto/quad/font"
	"github.com/go-theft-auto/quad/tiles"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single scene to capture.
type screenshot struct {
	name    string                    // filename without extension
	width   int                       // viewport width
	height  int                       // viewport height
	texture *opengl.Texture           // texture sampled by the scene
	draw    func(b *quad.Batch) error // scene drawing function
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	atlas, err := font.NewAtlas(goregular.TTF, font.DefaultConfig())
	if err != nil {
		return fmt.Errorf("build atlas: %w", err)
	}
	if err := writeAtlasFiles(atlas, outDir); err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewBatchRenderer(2048, 800, 600)
	if err != nil {
		return fmt.Errorf("batch renderer: %w", err)
	}
	defer renderer.Delete()

	atlasTex, err := opengl.UploadAtlas(atlas)
	if err != nil {
		return err
	}
	defer atlasTex.Delete()

	sheet, err := opengl.LoadTexture(filepath.Join("assets", "tiles.png"), opengl.FilterNearest)
	if err != nil {
		// Flat colours still show the layout.
		fmt.Fprintf(os.Stderr, "  tile sheet: %v\n", err)
		sheet = atlasTex
	} else {
		defer sheet.Delete()
	}

	shots := buildScreenshots(atlas, atlasTex, sheet)

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.BatchRenderer, s screenshot, outDir string) error {
	// The hidden window stays at 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)
	renderer.SetTexture(s.texture)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	b := quad.NewBatch(256, quad.WithGrowth())
	if err := s.draw(b); err != nil {
		return err
	}
	if err := b.Draw(renderer); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the scenes to capture.
func buildScreenshots(atlas *font.Atlas, atlasTex, sheet *opengl.Texture) []screenshot {
	return []screenshot{
		{
			name: "level", width: 320, height: 240, texture: sheet,
			draw: func(b *quad.Batch) error {
				l := tiles.NewLevel(20, 15)
				if err := l.Set(5, 5, tiles.KindWall); err != nil {
					return err
				}
				if err := tiles.DrawLevel(b, tiles.DefaultSheet, l, quad.Vec2{}, 16); err != nil {
					return err
				}
				return tiles.DrawAt(b, tiles.DefaultSheet, tiles.PlayerGlyph, 10, 7, quad.Vec2{}, 16)
			},
		},
		{
			name: "text", width: 480, height: 160, texture: atlasTex,
			draw: func(b *quad.Batch) error {
				s := "The quick brown fox jumps over the lazy dog. 0123456789 → ✓ 漢"
				for i, line := range font.WrapText(atlas, s, 448) {
					y := 16 + float32(i)*atlas.LineHeight()
					if _, err := font.DrawString(b, atlas, line, 16, y, quad.ColorWhite, quad.ColorTransparent); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			name: "atlas", width: 512, height: 512, texture: atlasTex,
			draw: func(b *quad.Batch) error {
				full := quad.Rect{W: 512, H: 512}
				return b.AddRect(full, quad.Rect{W: 1, H: 1}, quad.ColorBlack, quad.ColorWhite)
			},
		},
	}
}

// writeAtlasFiles saves the atlas for inspection and as a baked cache.
func writeAtlasFiles(a *font.Atlas, outDir string) error {
	writers := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"atlas.png", func(f *os.File) error { return font.WritePNG(f, a) }},
		{"atlas.ppm", func(f *os.File) error { return font.WritePPM(f, a) }},
		{"atlas.bin", func(f *os.File) error { return a.Encode(f) }},
	}

	for _, w := range writers {
		path := filepath.Join(outDir, w.name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := w.write(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("  %s\n", w.name)
	}
	return nil
}
