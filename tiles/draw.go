package tiles

import "github.com/go-theft-auto/quad"

// DrawTile adds one quad showing g from sheet over the screen rectangle r.
func DrawTile(b *quad.Batch, sheet Sheet, g Glyph, r quad.Rect) error {
	return b.AddRect(r, sheet.UV(g.Col, g.Row), g.Fg, g.Bg)
}

// DrawLevel adds one quad per level cell, row by row, with the top-left
// cell at origin and each cell dim units square. Entities drawn after it
// appear on top.
func DrawLevel(b *quad.Batch, sheet Sheet, l *Level, origin quad.Vec2, dim float32) error {
	all := CellRange{Col1: l.cols, Row1: l.rows}
	return drawCells(b, sheet, l, origin, dim, all)
}

func drawCells(b *quad.Batch, sheet Sheet, l *Level, origin quad.Vec2, dim float32, cells CellRange) error {
	if cells.Empty() {
		return nil
	}

	r := quad.Rect{W: dim, H: dim}
	for row := cells.Row0; row < cells.Row1; row++ {
		r.Y = origin.Y + float32(row)*dim
		for col := cells.Col0; col < cells.Col1; col++ {
			r.X = origin.X + float32(col)*dim
			g := l.cells[row*l.cols+col].Glyph()
			if err := DrawTile(b, sheet, g, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawAt adds g over the cell (col, row) of a level drawn at origin with
// cells dim units square.
func DrawAt(b *quad.Batch, sheet Sheet, g Glyph, col, row int, origin quad.Vec2, dim float32) error {
	r := quad.Rect{
		X: origin.X + float32(col)*dim,
		Y: origin.Y + float32(row)*dim,
		W: dim,
		H: dim,
	}
	return DrawTile(b, sheet, g, r)
}
