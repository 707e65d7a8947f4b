package font

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePPM writes the atlas as a binary PPM (P6) image for inspection.
// Coverage is drawn as black ink on a white background.
func WritePPM(w io.Writer, a *Atlas) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", a.Width(), a.Height()); err != nil {
		return fmt.Errorf("font: write ppm header: %w", err)
	}

	row := make([]byte, a.Width()*3)
	for y := 0; y < a.Height(); y++ {
		src := a.img.Pix[y*a.img.Stride : y*a.img.Stride+a.Width()]
		for x, c := range src {
			ink := 255 - c
			row[x*3+0] = ink
			row[x*3+1] = ink
			row[x*3+2] = ink
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("font: write ppm pixels: %w", err)
		}
	}

	return bw.Flush()
}

// WritePNG writes the atlas as a grayscale PNG, black ink on white.
func WritePNG(w io.Writer, a *Atlas) error {
	img := image.NewGray(a.img.Rect)
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			img.SetGray(x, y, color.Gray{Y: 255 - a.img.AlphaAt(x, y).A})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("font: write png: %w", err)
	}
	return nil
}
