// Example draws a walled tile level, a movable player and a line of text,
// each layer submitted through a quad.Batch.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Arrow keys or WASD move the player, F12 writes the glyph atlas to
// atlas.ppm and Escape quits. A 16x16 tile sheet is read from
// assets/tiles.png and a font from assets/font.ttf; built-in stand-ins are
// used when they are missing.
package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-theft-auto/quad"
	"github.com/go-theft-auto/quad/backend/opengl"
	"github.com/go-theft-auto/quad/font"
	"github.com/go-theft-auto/quad/tiles"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "quad example"

	tileSheetPath = "assets/tiles.png"
	fontPath      = "assets/font.ttf"
	atlasDumpPath = "atlas.ppm"

	tileDim  = 16
	maxQuads = tiles.DefaultCols*tiles.DefaultRows + 1
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging() *lumberjack.Logger {
	w := &lumberjack.Logger{
		Filename:   filepath.Join(os.TempDir(), "quad-example", "example.slog"),
		MaxSize:    8, // MB
		MaxBackups: 1,
	}
	quad.SetLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return w
}

func run() error {
	logFile := setupLogging()
	defer logFile.Close()
	log := quad.Logger()

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewBatchRenderer(maxQuads, windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("batch renderer: %w", err)
	}
	defer renderer.Delete()

	sheet, err := loadTileSheet()
	if err != nil {
		return err
	}
	defer sheet.Delete()

	fonts, err := newAtlasLoader()
	if err != nil {
		return err
	}
	dpiScale, _ := window.GetContentScale()
	atlas, err := fonts.load(dpiScale)
	if err != nil {
		return err
	}
	atlasTex, err := opengl.UploadAtlas(atlas)
	if err != nil {
		return err
	}
	defer func() { atlasTex.Delete() }()

	// Moving to a monitor with another scale rebuilds the atlas, or takes
	// it from the library if that scale was seen before.
	window.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		a, err := fonts.load(x)
		if err != nil {
			log.Error("atlas rebuild failed", "scale", x, "error", err)
			return
		}
		tex, err := opengl.UploadAtlas(a)
		if err != nil {
			log.Error("atlas upload failed", "scale", x, "error", err)
			return
		}
		atlasTex.Delete()
		atlas, atlasTex = a, tex
	})

	input := opengl.NewInputAdapter(window)

	level := tiles.NewLevel(tiles.DefaultCols, tiles.DefaultRows)
	playerCol, playerRow := 10, 10

	tileBatch := quad.NewBatch(maxQuads)
	textBatch := quad.NewBatch(256, quad.WithGrowth())

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		for _, m := range input.Moves() {
			if level.Walkable(playerCol+m.DX, playerRow+m.DY) {
				playerCol += m.DX
				playerRow += m.DY
			}
		}
		if input.DumpRequested() {
			if err := dumpAtlas(atlas); err != nil {
				log.Error("atlas dump failed", "error", err)
			}
		}

		fw, fh := window.GetFramebufferSize()
		ww, wh := window.GetSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(ww, wh)

		// Level first, the player on top of it.
		tileBatch.Clear()
		origin := quad.Vec2{}
		view := quad.Rect{W: float32(ww), H: float32(wh)}
		if err := tiles.DrawLevelView(tileBatch, tiles.DefaultSheet, level, origin, tileDim, view); err != nil {
			log.Warn("level truncated", "error", err)
		}
		if err := tiles.DrawAt(tileBatch, tiles.DefaultSheet, tiles.PlayerGlyph, playerCol, playerRow, origin, tileDim); err != nil {
			log.Warn("player not drawn", "error", err)
		}
		renderer.SetTexture(sheet)
		if err := tileBatch.Draw(renderer); err != nil {
			return fmt.Errorf("draw tiles: %w", err)
		}

		textBatch.Clear()
		status := fmt.Sprintf("player at %d,%d\narrows/WASD move, F12 dumps the atlas", playerCol, playerRow)
		textX := float32(tiles.DefaultCols*tileDim + 16)
		for i, line := range font.WrapText(atlas, status, float32(ww)-textX-16) {
			y := 16 + float32(i)*atlas.LineHeight()
			if _, err := font.DrawString(textBatch, atlas, line, textX, y, quad.ColorWhite, quad.ColorTransparent); err != nil {
				log.Warn("text truncated", "error", err)
			}
		}
		renderer.SetTexture(atlasTex)
		if err := textBatch.Draw(renderer); err != nil {
			return fmt.Errorf("draw text: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// loadTileSheet loads the tile sheet, or a plain white texture so tiles
// still show their colours when the file is missing.
func loadTileSheet() (*opengl.Texture, error) {
	t, err := opengl.LoadTexture(tileSheetPath, opengl.FilterNearest)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, quad.ErrResourceLoad) {
		return nil, err
	}

	quad.Logger().Warn("using blank tile sheet", "error", err)
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return opengl.NewTexture(img, opengl.FilterNearest)
}

// atlasLoader builds glyph atlases from the font file, falling back to the
// embedded Go Regular font. Atlases are kept in a font.Library per scale.
type atlasLoader struct {
	lib     *font.Library
	builtin bool

	// Grown until the glyphs fit, which high DPI scales need. Later scales
	// start from the last size that worked.
	width, height int
}

func newAtlasLoader() (*atlasLoader, error) {
	lib, err := font.NewLibrary(4)
	if err != nil {
		return nil, err
	}
	cfg := font.DefaultConfig()
	return &atlasLoader{lib: lib, width: cfg.Width, height: cfg.Height}, nil
}

func (l *atlasLoader) load(dpiScale float32) (*font.Atlas, error) {
	cfg := font.DefaultConfig()
	if dpiScale > 0 {
		cfg.DPIScale = dpiScale
	}

	for {
		cfg.Width, cfg.Height = l.width, l.height

		var a *font.Atlas
		var err error
		if l.builtin {
			a, err = l.lib.GetData("goregular", goregular.TTF, cfg)
		} else {
			a, err = l.lib.Get(fontPath, cfg)
		}

		switch {
		case err == nil:
			return a, nil
		case errors.Is(err, quad.ErrResourceLoad) && !l.builtin:
			quad.Logger().Warn("using built-in font", "error", err)
			l.builtin = true
		case errors.Is(err, font.ErrAtlasOverflow) && l.width < 4096:
			l.width *= 2
			l.height *= 2
			quad.Logger().Debug("growing atlas", "width", l.width, "height", l.height)
		default:
			return nil, err
		}
	}
}

func dumpAtlas(a *font.Atlas) error {
	f, err := os.Create(atlasDumpPath)
	if err != nil {
		return err
	}
	if err := font.WritePPM(f, a); err != nil {
		f.Close()
		return err
	}
	quad.Logger().Info("atlas written", "path", atlasDumpPath)
	return f.Close()
}
