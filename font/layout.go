package font

import "github.com/go-theft-auto/quad"

// DrawString adds one quad per visible character of s to b, starting with
// the pen at (x, y), the top of the first line. The pen advances by each
// glyph's AdvanceX; a newline returns it to x and moves it down one
// LineHeight. It returns the final pen position.
//
// Glyphs without ink (space) only advance the pen. The first batch error
// stops layout and is returned along with the pen position reached.
func DrawString(b *quad.Batch, a *Atlas, s string, x, y float32, fg, bg quad.Color) (quad.Vec2, error) {
	pen := quad.Vec2{X: x, Y: y}

	for _, r := range s {
		if r == '\n' {
			pen.X = x
			pen.Y += a.LineHeight()
			continue
		}

		g, ok := a.lookup(r)
		if !ok {
			continue
		}
		if !g.Empty() {
			q, _ := a.GlyphQuad(r, pen.X, pen.Y)
			if err := b.AddQuad(q.Screen(), q.Tex(), fg, bg); err != nil {
				return pen, err
			}
		}
		pen.X += g.AdvanceX
	}

	return pen, nil
}
